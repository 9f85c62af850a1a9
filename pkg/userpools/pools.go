package userpools

type AddCustomAttributesRequest struct {
	PoolRef
	CustomAttributes []SchemaAttributeType `json:"CustomAttributes" validate:"required,min=1,max=25,dive"`
}

func (AddCustomAttributesRequest) ActionName() string { return "AddCustomAttributes" }

type CreateIdentityProviderRequest struct {
	PoolRef
	AttributeMapping map[string]string `json:"AttributeMapping,omitempty"`
	IdpIdentifiers   []string          `json:"IdpIdentifiers,omitempty" validate:"omitempty,max=50,dive,min=1,max=40,awsname"`
	ProviderDetails  map[string]string `json:"ProviderDetails,omitempty"`
	ProviderName     string            `json:"ProviderName" validate:"required,min=1,max=32,providername"`
	ProviderType     string            `json:"ProviderType" validate:"required,oneof=SAML Facebook Google LoginWithAmazon SignInWithApple OIDC"`
}

func (CreateIdentityProviderRequest) ActionName() string { return "CreateIdentityProvider" }

type CreateResourceServerRequest struct {
	PoolRef
	Identifier string                    `json:"Identifier" validate:"required,min=1,max=256,rsidentifier"`
	Name       string                    `json:"Name" validate:"required,min=1,max=256,awsname"`
	Scopes     []ResourceServerScopeType `json:"Scopes,omitempty" validate:"omitempty,max=100,dive"`
}

func (CreateResourceServerRequest) ActionName() string { return "CreateResourceServer" }

type CreateUserImportJobRequest struct {
	PoolRef
	CloudWatchLogsRoleArn string `json:"CloudWatchLogsRoleArn" validate:"required,min=20,max=2048,awsarn"`
	JobName               string `json:"JobName" validate:"required,min=1,max=128,awsname"`
}

func (CreateUserImportJobRequest) ActionName() string { return "CreateUserImportJob" }

// CreateUserPoolRequest só exige o nome do pool. Os blocos de configuração
// são aceitos e repassados ao template sem checagem.
type CreateUserPoolRequest struct {
	AccountRecoverySetting      map[string]interface{}     `json:"AccountRecoverySetting,omitempty"`
	AdminCreateUserConfig       map[string]interface{}     `json:"AdminCreateUserConfig,omitempty"`
	AliasAttributes             []string                   `json:"AliasAttributes,omitempty" validate:"omitempty,dive,oneof=phone_number email preferred_username"`
	AutoVerifiedAttributes      []string                   `json:"AutoVerifiedAttributes,omitempty" validate:"omitempty,dive,oneof=phone_number email"`
	DeviceConfiguration         map[string]interface{}     `json:"DeviceConfiguration,omitempty"`
	EmailConfiguration          map[string]interface{}     `json:"EmailConfiguration,omitempty"`
	EmailVerificationMessage    *string                    `json:"EmailVerificationMessage,omitempty" validate:"omitempty,min=6,max=20000"`
	LambdaConfig                map[string]interface{}     `json:"LambdaConfig,omitempty"`
	MfaConfiguration            *string                    `json:"MfaConfiguration,omitempty" validate:"omitempty,oneof=OFF ON OPTIONAL"`
	Policies                    *UserPoolPolicyType        `json:"Policies,omitempty"`
	PoolName                    string                     `json:"PoolName" validate:"required,min=1,max=128,nonblank"`
	Schema                      []SchemaAttributeType      `json:"Schema,omitempty" validate:"omitempty,max=50,dive"`
	SmsAuthenticationMessage    *string                    `json:"SmsAuthenticationMessage,omitempty" validate:"omitempty,min=6,max=140,smsmessage"`
	SmsConfiguration            map[string]interface{}     `json:"SmsConfiguration,omitempty"`
	SmsVerificationMessage      *string                    `json:"SmsVerificationMessage,omitempty" validate:"omitempty,min=6,max=140,smsmessage"`
	UsernameAttributes          []string                   `json:"UsernameAttributes,omitempty" validate:"omitempty,dive,oneof=phone_number email"`
	UsernameConfiguration       *UsernameConfigurationType `json:"UsernameConfiguration,omitempty"`
	UserPoolAddOns              map[string]interface{}     `json:"UserPoolAddOns,omitempty"`
	UserPoolTags                map[string]string          `json:"UserPoolTags,omitempty"`
	VerificationMessageTemplate map[string]interface{}     `json:"VerificationMessageTemplate,omitempty"`
}

func (CreateUserPoolRequest) ActionName() string { return "CreateUserPool" }

type CreateUserPoolClientRequest struct {
	PoolRef
	AccessTokenValidity             *int64                  `json:"AccessTokenValidity,omitempty" validate:"omitempty,min=1,max=86400"`
	AllowedOAuthFlows               []string                `json:"AllowedOAuthFlows,omitempty" validate:"omitempty,max=3,dive,oneof=code implicit client_credentials"`
	AllowedOAuthFlowsUserPoolClient *bool                   `json:"AllowedOAuthFlowsUserPoolClient,omitempty"`
	AllowedOAuthScopes              []string                `json:"AllowedOAuthScopes,omitempty" validate:"omitempty,max=50,dive,min=1,max=256,scopename"`
	AnalyticsConfiguration          map[string]interface{}  `json:"AnalyticsConfiguration,omitempty"`
	CallbackURLs                    []string                `json:"CallbackURLs,omitempty" validate:"omitempty,max=100,dive,min=1,max=1024,awsurl"`
	ClientName                      string                  `json:"ClientName" validate:"required,min=1,max=128,awsname"`
	DefaultRedirectURI              *string                 `json:"DefaultRedirectURI,omitempty" validate:"omitempty,min=1,max=1024,awsurl"`
	EnableTokenRevocation           *bool                   `json:"EnableTokenRevocation,omitempty"`
	ExplicitAuthFlows               []string                `json:"ExplicitAuthFlows,omitempty" validate:"omitempty,dive,oneof=ADMIN_NO_SRP_AUTH CUSTOM_AUTH_FLOW_ONLY USER_PASSWORD_AUTH ALLOW_ADMIN_USER_PASSWORD_AUTH ALLOW_CUSTOM_AUTH ALLOW_USER_PASSWORD_AUTH ALLOW_USER_SRP_AUTH ALLOW_REFRESH_TOKEN_AUTH"`
	GenerateSecret                  *bool                   `json:"GenerateSecret,omitempty"`
	IDTokenValidity                 *int64                  `json:"IdTokenValidity,omitempty" validate:"omitempty,min=1,max=86400"`
	LogoutURLs                      []string                `json:"LogoutURLs,omitempty" validate:"omitempty,max=100,dive,min=1,max=1024,awsurl"`
	PreventUserExistenceErrors      *string                 `json:"PreventUserExistenceErrors,omitempty" validate:"omitempty,oneof=ENABLED LEGACY"`
	ReadAttributes                  []string                `json:"ReadAttributes,omitempty" validate:"omitempty,dive,min=1,max=2048"`
	RefreshTokenValidity            *int64                  `json:"RefreshTokenValidity,omitempty" validate:"omitempty,min=0,max=315360000"`
	SupportedIdentityProviders      []string                `json:"SupportedIdentityProviders,omitempty" validate:"omitempty,dive,min=1,max=32,awsname"`
	TokenValidityUnits              *TokenValidityUnitsType `json:"TokenValidityUnits,omitempty"`
	WriteAttributes                 []string                `json:"WriteAttributes,omitempty" validate:"omitempty,dive,min=1,max=2048"`
}

func (CreateUserPoolClientRequest) ActionName() string { return "CreateUserPoolClient" }

type DeleteUserPoolRequest struct {
	PoolRef
}

func (DeleteUserPoolRequest) ActionName() string { return "DeleteUserPool" }

type DescribeUserPoolRequest struct {
	PoolRef
}

func (DescribeUserPoolRequest) ActionName() string { return "DescribeUserPool" }

type ListUserPoolsRequest struct {
	MaxResults int64   `json:"MaxResults" validate:"required,min=1,max=60"`
	NextToken  *string `json:"NextToken,omitempty" validate:"omitempty,min=1,nonblank"`
}

func (ListUserPoolsRequest) ActionName() string { return "ListUserPools" }

type UserPoolClientRef struct {
	ClientID   string `json:"ClientId" validate:"required,min=1,max=128,clientid"`
	UserPoolID string `json:"UserPoolId" validate:"required,min=1,max=55,poolid"`
}

type DescribeUserPoolClientRequest struct {
	UserPoolClientRef
}

func (DescribeUserPoolClientRequest) ActionName() string { return "DescribeUserPoolClient" }

type DeleteUserPoolClientRequest struct {
	UserPoolClientRef
}

func (DeleteUserPoolClientRequest) ActionName() string { return "DeleteUserPoolClient" }
