package userpools

// Tipos aninhados compartilhados entre as requisições.

type AttributeType struct {
	Name  string  `json:"Name" validate:"required,min=1,max=32,attrname"`
	Value *string `json:"Value,omitempty" validate:"omitempty,max=2048"`
}

type AnalyticsMetadataType struct {
	AnalyticsEndpointID *string `json:"AnalyticsEndpointId,omitempty"`
}

type HTTPHeader struct {
	HeaderName  *string `json:"headerName,omitempty"`
	HeaderValue *string `json:"headerValue,omitempty"`
}

type ContextDataType struct {
	EncodedData *string      `json:"EncodedData,omitempty"`
	HTTPHeaders []HTTPHeader `json:"HttpHeaders" validate:"required"`
	IPAddress   string       `json:"IpAddress" validate:"required"`
	ServerName  string       `json:"ServerName" validate:"required"`
	ServerPath  string       `json:"ServerPath" validate:"required"`
}

type UserContextDataType struct {
	EncodedData *string `json:"EncodedData,omitempty"`
	IPAddress   *string `json:"IpAddress,omitempty"`
}

type ProviderUserIdentifierType struct {
	ProviderAttributeName  *string `json:"ProviderAttributeName,omitempty"`
	ProviderAttributeValue *string `json:"ProviderAttributeValue,omitempty"`
	ProviderName           *string `json:"ProviderName,omitempty" validate:"omitempty,min=1,max=32"`
}

type MFAOptionType struct {
	AttributeName  *string `json:"AttributeName,omitempty" validate:"omitempty,min=1,max=32,attrname"`
	DeliveryMedium *string `json:"DeliveryMedium,omitempty" validate:"omitempty,oneof=SMS EMAIL"`
}

type MFASettingsType struct {
	Enabled      *bool `json:"Enabled,omitempty"`
	PreferredMfa *bool `json:"PreferredMfa,omitempty"`
}

type DeviceSecretVerifierConfigType struct {
	PasswordVerifier *string `json:"PasswordVerifier,omitempty"`
	Salt             *string `json:"Salt,omitempty"`
}

type NumberAttributeConstraintsType struct {
	MaxValue *string `json:"MaxValue,omitempty"`
	MinValue *string `json:"MinValue,omitempty"`
}

type StringAttributeConstraintsType struct {
	MaxLength *string `json:"MaxLength,omitempty"`
	MinLength *string `json:"MinLength,omitempty"`
}

type SchemaAttributeType struct {
	AttributeDataType          *string                         `json:"AttributeDataType,omitempty" validate:"omitempty,oneof=String Number DateTime Boolean"`
	DeveloperOnlyAttribute     *bool                           `json:"DeveloperOnlyAttribute,omitempty"`
	Mutable                    *bool                           `json:"Mutable,omitempty"`
	Name                       *string                         `json:"Name,omitempty" validate:"omitempty,min=1,max=20,attrname"`
	NumberAttributeConstraints *NumberAttributeConstraintsType `json:"NumberAttributeConstraints,omitempty"`
	Required                   *bool                           `json:"Required,omitempty"`
	StringAttributeConstraints *StringAttributeConstraintsType `json:"StringAttributeConstraints,omitempty"`
}

type ResourceServerScopeType struct {
	ScopeDescription string `json:"ScopeDescription" validate:"required,min=1,max=256"`
	ScopeName        string `json:"ScopeName" validate:"required,min=1,max=256,scopename"`
}

type PasswordPolicyType struct {
	MinimumLength                 *int64 `json:"MinimumLength,omitempty" validate:"omitempty,min=6,max=99"`
	RequireLowercase              *bool  `json:"RequireLowercase,omitempty"`
	RequireNumbers                *bool  `json:"RequireNumbers,omitempty"`
	RequireSymbols                *bool  `json:"RequireSymbols,omitempty"`
	RequireUppercase              *bool  `json:"RequireUppercase,omitempty"`
	TemporaryPasswordValidityDays *int64 `json:"TemporaryPasswordValidityDays,omitempty" validate:"omitempty,min=0,max=365"`
}

type UserPoolPolicyType struct {
	PasswordPolicy *PasswordPolicyType `json:"PasswordPolicy,omitempty"`
}

type TokenValidityUnitsType struct {
	AccessToken  *string `json:"AccessToken,omitempty" validate:"omitempty,oneof=seconds minutes hours days"`
	IDToken      *string `json:"IdToken,omitempty" validate:"omitempty,oneof=seconds minutes hours days"`
	RefreshToken *string `json:"RefreshToken,omitempty" validate:"omitempty,oneof=seconds minutes hours days"`
}

type UsernameConfigurationType struct {
	CaseSensitive bool `json:"CaseSensitive"`
}
