package units

const (
	maxInt64 = 1<<63 - 1
)
