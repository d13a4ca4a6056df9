package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	CityAlreadyExistsCode    = 1001
	CityAlreadyExistsMessage = "city with this name already exists"
	CityNotFoundCode         = 1002
	CityNotFoundMessage      = "city not found"
	NoCitiesToUpdateCode     = 1003
	NoCitiesToUpdateMessage  = "no cities in database to update"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case CityAlreadyExistsCode:
		errorStruct.ErrorCode = CityAlreadyExistsCode
		errorStruct.ErrorMessage = CityAlreadyExistsMessage
	case CityNotFoundCode:
		errorStruct.ErrorCode = CityNotFoundCode
		errorStruct.ErrorMessage = CityNotFoundMessage
	case NoCitiesToUpdateCode:
		errorStruct.ErrorCode = NoCitiesToUpdateCode
		errorStruct.ErrorMessage = NoCitiesToUpdateMessage
	}

	return errorStruct
}
