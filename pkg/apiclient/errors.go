package apiclient

import (
	"encoding/json"

	"github.com/kubev2v/vcfctl/internal/models"
)

var friendlyMessages = map[models.ErrorCode]string{
	models.ErrorCodeAuthRequired:       "로그인이 필요합니다.",
	models.ErrorCodeInvalidSession:     "세션이 만료되었습니다. 다시 로그인해주세요.",
	models.ErrorCodeInvalidCredentials: "아이디 또는 비밀번호가 올바르지 않습니다.",
	models.ErrorCodeVCFUnavailable:     "VCF API에 연결할 수 없습니다. URL/네트워크를 확인해주세요.",
	models.ErrorCodeVCFLoginFailed:     "로그인 처리 중 오류가 발생했습니다.",
	models.ErrorCodeVCFFetchFailed:     "가상센터 목록을 가져오지 못했습니다.",
}

// errorPayload is the optional body of a non 2xx response.
// code and message are read independently and only when they are strings.
type errorPayload struct {
	Code    models.ErrorCode
	Message string
}

func parseErrorPayload(body []byte) errorPayload {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return errorPayload{}
	}

	var payload errorPayload
	var code string
	if json.Unmarshal(fields["code"], &code) == nil {
		payload.Code = models.ErrorCode(code)
	}
	_ = json.Unmarshal(fields["message"], &payload.Message)
	return payload
}

// KnownCode reports whether code has a fixed translation.
func KnownCode(code models.ErrorCode) bool {
	_, ok := friendlyMessages[code]
	return ok
}

// ResolveMessage picks the user facing message: the translation of a known code,
// then the server message, then the generic fallback.
func ResolveMessage(code models.ErrorCode, serverMessage string) string {
	if msg, ok := friendlyMessages[code]; ok {
		return msg
	}
	if serverMessage != "" {
		return serverMessage
	}
	return models.GenericErrorMessage
}

func newResponseError(status int, body []byte) *models.APIError {
	payload := parseErrorPayload(body)

	return &models.APIError{
		Status:  status,
		Code:    payload.Code,
		Message: ResolveMessage(payload.Code, payload.Message),
	}
}

func newTransportError(err error) *models.APIError {
	return &models.APIError{
		Status:  0,
		Message: models.GenericErrorMessage,
		Err:     err,
	}
}

// newInvalidBodyError is returned when a 2xx response carries something that is not json.
func newInvalidBodyError(status int, err error) *models.APIError {
	return &models.APIError{
		Status:  status,
		Message: models.GenericErrorMessage,
		Err:     err,
	}
}
