package userpools

import (
	"github.com/raywall/cognito-emulator/pkg/action"
	"github.com/raywall/cognito-emulator/pkg/awserr"
)

const internalError = "InternalErrorException"

// Erros presentes em praticamente todas as actions.
var baseErrors = []string{
	"InvalidParameterException",
	"NotAuthorizedException",
	"ResourceNotFoundException",
	"TooManyRequestsException",
}

// Conjuntos recorrentes de falhas de lambda e de SMS.
var (
	lambdaErrors = []string{
		"InvalidLambdaResponseException",
		"UnexpectedLambdaException",
		"UserLambdaValidationException",
	}
	smsRoleErrors = []string{
		"InvalidSmsRoleAccessPolicyException",
		"InvalidSmsRoleTrustRelationshipException",
	}
	authErrors = []string{
		"InvalidUserPoolConfigurationException",
		"MFAMethodNotFoundException",
		"PasswordResetRequiredException",
		"UserNotConfirmedException",
		"UserNotFoundException",
	}
)

// kinds monta o conjunto de erros da action: base + extras como 400 e
// InternalErrorException como 500.
func kinds(extra ...[]string) awserr.Kinds {
	client := append([]string{}, baseErrors...)
	for _, e := range extra {
		client = append(client, e...)
	}
	return awserr.NewKinds(awserr.Client(client...), awserr.Internal(internalError))
}

func names(n ...string) []string { return n }

// NewCatalog cria o catálogo com todas as actions de user pool registradas.
func NewCatalog() *action.Catalog {
	c := action.NewCatalog(NewValidator())
	Register(c)
	return c
}

// Register adiciona as actions de user pool a um catálogo existente.
func Register(c *action.Catalog) {
	userNotFound := names("UserNotFoundException")

	// Usuários
	action.Register[AdminCreateUserRequest](c, kinds(lambdaErrors, smsRoleErrors, names(
		"CodeDeliveryFailureException", "InvalidPasswordException", "PreconditionNotMetException",
		"UnsupportedUserStateException", "UsernameExistsException", "UserNotFoundException",
	)), action.OutputJSON)
	action.Register[AdminGetUserRequest](c, kinds(userNotFound), action.OutputJSON)
	action.Register[AdminDeleteUserRequest](c, kinds(userNotFound), action.OutputEmpty)
	action.Register[AdminDisableUserRequest](c, kinds(userNotFound), action.OutputEmpty)
	action.Register[AdminEnableUserRequest](c, kinds(userNotFound), action.OutputEmpty)
	action.Register[AdminConfirmSignUpRequest](c, kinds(names(
		"InvalidLambdaResponseException", "LimitExceededException", "TooManyFailedAttemptsException",
		"UserLambdaValidationException", "UserNotFoundException",
	)), action.OutputEmpty)
	action.Register[AdminDeleteUserAttributesRequest](c, kinds(userNotFound), action.OutputEmpty)
	action.Register[AdminUpdateUserAttributesRequest](c, kinds(lambdaErrors, smsRoleErrors, names(
		"AliasExistsException", "InvalidEmailRoleAccessPolicyException", "UserNotFoundException",
	)), action.OutputEmpty)
	action.Register[AdminResetUserPasswordRequest](c, kinds(lambdaErrors, smsRoleErrors, names(
		"InvalidEmailRoleAccessPolicyException", "LimitExceededException", "UserNotFoundException",
	)), action.OutputEmpty)
	action.Register[AdminSetUserPasswordRequest](c, kinds(names("InvalidPasswordException", "UserNotFoundException")), action.OutputEmpty)
	action.Register[AdminSetUserSettingsRequest](c, kinds(lambdaErrors, smsRoleErrors, authErrors), action.OutputEmpty)
	action.Register[AdminSetUserMFAPreferenceRequest](c, kinds(names(
		"PasswordResetRequiredException", "UserNotConfirmedException", "UserNotFoundException",
	)), action.OutputEmpty)
	action.Register[AdminUserGlobalSignOutRequest](c, kinds(userNotFound), action.OutputEmpty)
	action.Register[AdminAddUserToGroupRequest](c, kinds(userNotFound), action.OutputEmpty)
	action.Register[AdminRemoveUserFromGroupRequest](c, kinds(userNotFound), action.OutputEmpty)
	action.Register[AdminListGroupsForUserRequest](c, kinds(userNotFound), action.OutputJSON)
	action.Register[AdminDisableProviderForUserRequest](c, kinds(names("AliasExistsException", "UserNotFoundException")), action.OutputEmpty)
	action.Register[AdminLinkProviderForUserRequest](c, kinds(names(
		"AliasExistsException", "LimitExceededException", "UserNotFoundException",
	)), action.OutputEmpty)
	action.Register[AdminListUserAuthEventsRequest](c, kinds(names("UserNotFoundException", "UserPoolAddOnNotEnabledException")), action.OutputJSON)
	action.Register[AdminUpdateAuthEventFeedbackRequest](c, kinds(names("UserNotFoundException", "UserPoolAddOnNotEnabledException")), action.OutputEmpty)
	action.Register[ListUsersRequest](c, kinds(), action.OutputJSON)

	// Dispositivos
	action.Register[AdminForgetDeviceRequest](c, kinds(names("InvalidUserPoolConfigurationException", "UserNotFoundException")), action.OutputEmpty)
	action.Register[AdminGetDeviceRequest](c, kinds(names("InvalidUserPoolConfigurationException")), action.OutputJSON)
	action.Register[AdminListDevicesRequest](c, kinds(names("InvalidUserPoolConfigurationException")), action.OutputJSON)
	action.Register[AdminUpdateDeviceStatusRequest](c, kinds(names(
		"InvalidUserPoolConfigurationException", "MFAMethodNotFoundException", "UserNotFoundException",
	)), action.OutputEmpty)
	action.Register[ConfirmDeviceRequest](c, kinds(names(
		"InvalidLambdaResponseException", "InvalidPasswordException", "InvalidUserPoolConfigurationException",
		"PasswordResetRequiredException", "UsernameExistsException", "UserNotConfirmedException", "UserNotFoundException",
	)), action.OutputJSON)

	// Grupos
	action.Register[CreateGroupRequest](c, kinds(names("GroupExistsException", "LimitExceededException")), action.OutputJSON)
	action.Register[DeleteGroupRequest](c, kinds(), action.OutputEmpty)
	action.Register[GetGroupRequest](c, kinds(), action.OutputJSON)
	action.Register[UpdateGroupRequest](c, kinds(), action.OutputJSON)
	action.Register[ListGroupsRequest](c, kinds(), action.OutputJSON)

	// Autenticação
	action.Register[AdminInitiateAuthRequest](c, kinds(lambdaErrors, smsRoleErrors, authErrors), action.OutputJSON)
	action.Register[AdminRespondToAuthChallengeRequest](c, kinds(lambdaErrors, smsRoleErrors, authErrors, names(
		"AliasExistsException", "CodeMismatchException", "ExpiredCodeException",
		"InvalidPasswordException", "SoftwareTokenMFANotFoundException",
	)), action.OutputJSON)
	action.Register[InitiateAuthRequest](c, kinds(lambdaErrors, smsRoleErrors, authErrors), action.OutputJSON)
	action.Register[RespondToAuthChallengeRequest](c, kinds(lambdaErrors, smsRoleErrors, authErrors, names(
		"AliasExistsException", "CodeMismatchException", "ExpiredCodeException",
		"InvalidPasswordException", "SoftwareTokenMFANotFoundException",
	)), action.OutputJSON)
	action.Register[AssociateSoftwareTokenRequest](c, kinds(names("SoftwareTokenMFANotFoundException")), action.OutputJSON)
	action.Register[ChangePasswordRequest](c, kinds(names(
		"InvalidPasswordException", "LimitExceededException", "PasswordResetRequiredException",
		"UserNotConfirmedException", "UserNotFoundException",
	)), action.OutputEmpty)
	action.Register[ConfirmForgotPasswordRequest](c, kinds(lambdaErrors, names(
		"CodeMismatchException", "ExpiredCodeException", "InvalidPasswordException",
		"LimitExceededException", "UserNotConfirmedException", "UserNotFoundException",
	)), action.OutputEmpty)
	action.Register[ConfirmSignUpRequest](c, kinds(lambdaErrors, names(
		"AliasExistsException", "CodeMismatchException", "ExpiredCodeException",
		"LimitExceededException", "TooManyFailedAttemptsException", "UserNotFoundException",
	)), action.OutputEmpty)
	action.Register[SignUpRequest](c, kinds(lambdaErrors, smsRoleErrors, names(
		"CodeDeliveryFailureException", "InvalidEmailRoleAccessPolicyException",
		"InvalidPasswordException", "UsernameExistsException",
	)), action.OutputJSON)
	action.Register[ForgotPasswordRequest](c, kinds(lambdaErrors, smsRoleErrors, names(
		"CodeDeliveryFailureException", "InvalidEmailRoleAccessPolicyException",
		"LimitExceededException", "UserNotConfirmedException", "UserNotFoundException",
	)), action.OutputJSON)
	action.Register[GetUserRequest](c, kinds(names(
		"PasswordResetRequiredException", "UserNotConfirmedException", "UserNotFoundException",
	)), action.OutputJSON)
	action.Register[GlobalSignOutRequest](c, kinds(names("PasswordResetRequiredException", "UserNotConfirmedException")), action.OutputEmpty)
	action.Register[DeleteUserRequest](c, kinds(names(
		"PasswordResetRequiredException", "UserNotConfirmedException", "UserNotFoundException",
	)), action.OutputEmpty)

	// User pools e clientes
	action.Register[AddCustomAttributesRequest](c, kinds(names("UserImportInProgressException")), action.OutputEmpty)
	action.Register[CreateIdentityProviderRequest](c, kinds(names("DuplicateProviderException", "LimitExceededException")), action.OutputJSON)
	action.Register[CreateResourceServerRequest](c, kinds(names("LimitExceededException")), action.OutputJSON)
	action.Register[CreateUserImportJobRequest](c, kinds(names("LimitExceededException", "PreconditionNotMetException")), action.OutputJSON)
	action.Register[CreateUserPoolRequest](c, kinds(smsRoleErrors, names(
		"InvalidEmailRoleAccessPolicyException", "LimitExceededException", "UserPoolTaggingException",
	)), action.OutputJSON)
	action.Register[CreateUserPoolClientRequest](c, kinds(names(
		"InvalidOAuthFlowException", "LimitExceededException", "ScopeDoesNotExistException",
	)), action.OutputJSON)
	action.Register[DeleteUserPoolRequest](c, kinds(names("UserImportInProgressException")), action.OutputEmpty)
	action.Register[DescribeUserPoolRequest](c, kinds(names("UserPoolTaggingException")), action.OutputJSON)
	action.Register[ListUserPoolsRequest](c, kinds(), action.OutputJSON)
	action.Register[DescribeUserPoolClientRequest](c, kinds(), action.OutputJSON)
	action.Register[DeleteUserPoolClientRequest](c, kinds(names("ConcurrentModificationException")), action.OutputEmpty)
}
