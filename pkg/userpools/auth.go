package userpools

// ClientRef agrupa os campos de cliente usados pelos fluxos públicos.
type ClientRef struct {
	ClientID   string  `json:"ClientId" validate:"required,min=1,max=128,clientid"`
	SecretHash *string `json:"SecretHash,omitempty" validate:"omitempty,min=1,max=128,secrethash"`
}

type AdminInitiateAuthRequest struct {
	AnalyticsMetadata *AnalyticsMetadataType `json:"AnalyticsMetadata,omitempty"`
	AuthFlow          string                 `json:"AuthFlow" validate:"required,oneof=USER_SRP_AUTH REFRESH_TOKEN_AUTH REFRESH_TOKEN CUSTOM_AUTH ADMIN_NO_SRP_AUTH USER_PASSWORD_AUTH ADMIN_USER_PASSWORD_AUTH"`
	AuthParameters    map[string]string      `json:"AuthParameters,omitempty"`
	ClientID          string                 `json:"ClientId" validate:"required,min=1,max=128,clientid"`
	ClientMetadata    map[string]string      `json:"ClientMetadata,omitempty"`
	ContextData       *ContextDataType       `json:"ContextData,omitempty"`
	UserPoolID        string                 `json:"UserPoolId" validate:"required,min=1,max=55,poolid"`
}

func (AdminInitiateAuthRequest) ActionName() string { return "AdminInitiateAuth" }

type AdminRespondToAuthChallengeRequest struct {
	AnalyticsMetadata  *AnalyticsMetadataType `json:"AnalyticsMetadata,omitempty"`
	ChallengeName      string                 `json:"ChallengeName" validate:"required,oneof=SMS_MFA SOFTWARE_TOKEN_MFA SELECT_MFA_TYPE MFA_SETUP PASSWORD_VERIFIER CUSTOM_CHALLENGE DEVICE_SRP_AUTH DEVICE_PASSWORD_VERIFIER ADMIN_NO_SRP_AUTH NEW_PASSWORD_REQUIRED"`
	ChallengeResponses map[string]string      `json:"ChallengeResponses,omitempty"`
	ClientID           string                 `json:"ClientId" validate:"required,min=1,max=128,clientid"`
	ClientMetadata     map[string]string      `json:"ClientMetadata,omitempty"`
	ContextData        *ContextDataType       `json:"ContextData,omitempty"`
	Session            *string                `json:"Session,omitempty" validate:"omitempty,min=20,max=2048"`
	UserPoolID         string                 `json:"UserPoolId" validate:"required,min=1,max=55,poolid"`
}

func (AdminRespondToAuthChallengeRequest) ActionName() string { return "AdminRespondToAuthChallenge" }

type InitiateAuthRequest struct {
	AnalyticsMetadata *AnalyticsMetadataType `json:"AnalyticsMetadata,omitempty"`
	AuthFlow          string                 `json:"AuthFlow" validate:"required,oneof=USER_SRP_AUTH REFRESH_TOKEN_AUTH REFRESH_TOKEN CUSTOM_AUTH ADMIN_NO_SRP_AUTH USER_PASSWORD_AUTH ADMIN_USER_PASSWORD_AUTH"`
	AuthParameters    map[string]string      `json:"AuthParameters,omitempty"`
	ClientID          string                 `json:"ClientId" validate:"required,min=1,max=128,clientid"`
	ClientMetadata    map[string]string      `json:"ClientMetadata,omitempty"`
	UserContextData   *UserContextDataType   `json:"UserContextData,omitempty"`
}

func (InitiateAuthRequest) ActionName() string { return "InitiateAuth" }

type RespondToAuthChallengeRequest struct {
	AnalyticsMetadata  *AnalyticsMetadataType `json:"AnalyticsMetadata,omitempty"`
	ChallengeName      string                 `json:"ChallengeName" validate:"required,oneof=SMS_MFA SOFTWARE_TOKEN_MFA SELECT_MFA_TYPE MFA_SETUP PASSWORD_VERIFIER CUSTOM_CHALLENGE DEVICE_SRP_AUTH DEVICE_PASSWORD_VERIFIER ADMIN_NO_SRP_AUTH NEW_PASSWORD_REQUIRED"`
	ChallengeResponses map[string]string      `json:"ChallengeResponses,omitempty"`
	ClientID           string                 `json:"ClientId" validate:"required,min=1,max=128,clientid"`
	ClientMetadata     map[string]string      `json:"ClientMetadata,omitempty"`
	Session            *string                `json:"Session,omitempty" validate:"omitempty,min=20,max=2048"`
	UserContextData    *UserContextDataType   `json:"UserContextData,omitempty"`
}

func (RespondToAuthChallengeRequest) ActionName() string { return "RespondToAuthChallenge" }

type AssociateSoftwareTokenRequest struct {
	AccessToken *string `json:"AccessToken,omitempty" validate:"omitempty,accesstoken"`
	Session     *string `json:"Session,omitempty" validate:"omitempty,min=20,max=2048"`
}

func (AssociateSoftwareTokenRequest) ActionName() string { return "AssociateSoftwareToken" }

type ChangePasswordRequest struct {
	AccessToken      string `json:"AccessToken" validate:"required,accesstoken"`
	PreviousPassword string `json:"PreviousPassword" validate:"required,min=1,max=256,password"`
	ProposedPassword string `json:"ProposedPassword" validate:"required,min=1,max=256,password"`
}

func (ChangePasswordRequest) ActionName() string { return "ChangePassword" }

type ConfirmForgotPasswordRequest struct {
	ClientRef
	AnalyticsMetadata *AnalyticsMetadataType `json:"AnalyticsMetadata,omitempty"`
	ClientMetadata    map[string]string      `json:"ClientMetadata,omitempty"`
	ConfirmationCode  string                 `json:"ConfirmationCode" validate:"required,min=1,max=2048,confcode"`
	Password          string                 `json:"Password" validate:"required,min=1,max=256,password"`
	UserContextData   *UserContextDataType   `json:"UserContextData,omitempty"`
	Username          string                 `json:"Username" validate:"required,min=1,max=128,awsname"`
}

func (ConfirmForgotPasswordRequest) ActionName() string { return "ConfirmForgotPassword" }

type ConfirmSignUpRequest struct {
	ClientRef
	AnalyticsMetadata  *AnalyticsMetadataType `json:"AnalyticsMetadata,omitempty"`
	ClientMetadata     map[string]string      `json:"ClientMetadata,omitempty"`
	ConfirmationCode   string                 `json:"ConfirmationCode" validate:"required,min=1,max=2048,confcode"`
	ForceAliasCreation *bool                  `json:"ForceAliasCreation,omitempty"`
	UserContextData    *UserContextDataType   `json:"UserContextData,omitempty"`
	Username           string                 `json:"Username" validate:"required,min=1,max=128,awsname"`
}

func (ConfirmSignUpRequest) ActionName() string { return "ConfirmSignUp" }

type SignUpRequest struct {
	ClientRef
	AnalyticsMetadata *AnalyticsMetadataType `json:"AnalyticsMetadata,omitempty"`
	ClientMetadata    map[string]string      `json:"ClientMetadata,omitempty"`
	Password          string                 `json:"Password" validate:"required,min=1,max=256,password"`
	UserAttributes    []AttributeType        `json:"UserAttributes,omitempty" validate:"omitempty,dive"`
	UserContextData   *UserContextDataType   `json:"UserContextData,omitempty"`
	Username          string                 `json:"Username" validate:"required,min=1,max=128,awsname"`
	ValidationData    []AttributeType        `json:"ValidationData,omitempty" validate:"omitempty,dive"`
}

func (SignUpRequest) ActionName() string { return "SignUp" }

type ForgotPasswordRequest struct {
	ClientRef
	AnalyticsMetadata *AnalyticsMetadataType `json:"AnalyticsMetadata,omitempty"`
	ClientMetadata    map[string]string      `json:"ClientMetadata,omitempty"`
	UserContextData   *UserContextDataType   `json:"UserContextData,omitempty"`
	Username          string                 `json:"Username" validate:"required,min=1,max=128,awsname"`
}

func (ForgotPasswordRequest) ActionName() string { return "ForgotPassword" }

type AccessTokenRequest struct {
	AccessToken string `json:"AccessToken" validate:"required,accesstoken"`
}

type GetUserRequest struct {
	AccessTokenRequest
}

func (GetUserRequest) ActionName() string { return "GetUser" }

type GlobalSignOutRequest struct {
	AccessTokenRequest
}

func (GlobalSignOutRequest) ActionName() string { return "GlobalSignOut" }

type DeleteUserRequest struct {
	AccessTokenRequest
}

func (DeleteUserRequest) ActionName() string { return "DeleteUser" }
