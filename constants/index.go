package constants

const (
	SCREENING_SCHEDULED = "scheduled"
	SCREENING_EXPIRED   = "expired"
)

const (
	DATA_INPUT_INVALID         = "DATA_INPUT_INVALID"
	ERROR_PARSE_DATA_TO_LOCALS = "ERROR_PARSE_DATA_TO_LOCALS"
	MOVIE_NOT_FOUND            = "MOVIE_NOT_FOUND"
	ROOM_NOT_FOUND             = "ROOM_NOT_FOUND"
	SCREENING_NOT_FOUND        = "SCREENING_NOT_FOUND"
	VALIDATION_FAILED          = "VALIDATION_FAILED"
	INVALID_DATE               = "INVALID_DATE"
	ERROR_CREATE               = "ERROR_CREATE"
	ERROR_EDIT                 = "ERROR_EDIT"
	ERROR_DELETE               = "ERROR_DELETE"
	ERROR_GENERATE             = "ERROR_GENERATE"
)
