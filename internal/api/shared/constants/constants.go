package constants

const (
	MAX_PAGE_SIZE      = 100
	DEFAULT_PAGE_SIZE  = 20
	DEFAULT_OFFSET     = uint64(0)
	REQUEST_ID_HEADER  = "X-Request-ID"
	RETRY_AFTER_HEADER = "Retry-After"
)
