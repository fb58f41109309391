package repository

var Int64Ptr = int64Ptr

func SetNowMillis(fn func() int64) (restore func()) {
	prev := nowMillis
	nowMillis = fn
	return func() { nowMillis = prev }
}
