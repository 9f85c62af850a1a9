package awserr

import (
	"net/http"
	"sort"
)

// CommonError representa os erros de protocolo compartilhados por todas as actions.
type CommonError string

const (
	AccessDeniedException       CommonError = "AccessDeniedException"
	IncompleteSignature         CommonError = "IncompleteSignature"
	InternalFailure             CommonError = "InternalFailure"
	InvalidAction               CommonError = "InvalidAction"
	InvalidClientTokenID        CommonError = "InvalidClientTokenId"
	InvalidParameterCombination CommonError = "InvalidParameterCombination"
	InvalidParameterValue       CommonError = "InvalidParameterValue"
	InvalidQueryParameter       CommonError = "InvalidQueryParameter"
	MalformedQueryString        CommonError = "MalformedQueryString"
	MissingAction               CommonError = "MissingAction"
	MissingAuthenticationToken  CommonError = "MissingAuthenticationToken"
	MissingParameter            CommonError = "MissingParameter"
	NotAuthorized               CommonError = "NotAuthorized"
	OptInRequired               CommonError = "OptInRequired"
	RequestExpired              CommonError = "RequestExpired"
	ServiceUnavailable          CommonError = "ServiceUnavailable"
	ThrottlingException         CommonError = "ThrottlingException"
	ValidationError             CommonError = "ValidationError"
)

var commonStatus = map[CommonError]int{
	AccessDeniedException:       http.StatusBadRequest,
	IncompleteSignature:         http.StatusBadRequest,
	InvalidAction:               http.StatusBadRequest,
	InvalidParameterCombination: http.StatusBadRequest,
	InvalidParameterValue:       http.StatusBadRequest,
	InvalidQueryParameter:       http.StatusBadRequest,
	MissingAction:               http.StatusBadRequest,
	MissingParameter:            http.StatusBadRequest,
	NotAuthorized:               http.StatusBadRequest,
	RequestExpired:              http.StatusBadRequest,
	ThrottlingException:         http.StatusBadRequest,
	ValidationError:             http.StatusBadRequest,

	InvalidClientTokenID:       http.StatusForbidden,
	MissingAuthenticationToken: http.StatusForbidden,
	OptInRequired:              http.StatusForbidden,

	MalformedQueryString: http.StatusNotFound,
	InternalFailure:      http.StatusInternalServerError,
	ServiceUnavailable:   http.StatusServiceUnavailable,
}

// StatusCode retorna o status HTTP associado ao erro.
func (c CommonError) StatusCode() int {
	if status, ok := commonStatus[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (c CommonError) String() string { return string(c) }

// ParseCommon busca um erro comum pelo nome exato.
func ParseCommon(name string) (CommonError, bool) {
	c := CommonError(name)
	_, ok := commonStatus[c]
	return c, ok
}

// CommonErrors lista todos os erros comuns em ordem alfabética.
func CommonErrors() []CommonError {
	out := make([]CommonError, 0, len(commonStatus))
	for c := range commonStatus {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
