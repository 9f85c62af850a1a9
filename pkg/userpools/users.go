package userpools

// PoolRef identifica o user pool alvo.
type PoolRef struct {
	UserPoolID string `json:"UserPoolId" validate:"required,min=1,max=55,poolid"`
}

// UserRef identifica um usuário dentro do user pool.
type UserRef struct {
	Username   string `json:"Username" validate:"required,min=1,max=128,awsname"`
	UserPoolID string `json:"UserPoolId" validate:"required,min=1,max=55,poolid"`
}

type AdminCreateUserRequest struct {
	UserRef
	ClientMetadata         map[string]string `json:"ClientMetadata,omitempty"`
	DesiredDeliveryMediums []string          `json:"DesiredDeliveryMediums,omitempty" validate:"omitempty,dive,oneof=SMS EMAIL"`
	ForceAliasCreation     *bool             `json:"ForceAliasCreation,omitempty"`
	MessageAction          *string           `json:"MessageAction,omitempty" validate:"omitempty,oneof=RESEND SUPPRESS"`
	TemporaryPassword      *string           `json:"TemporaryPassword,omitempty" validate:"omitempty,max=256,password"`
	UserAttributes         []AttributeType   `json:"UserAttributes,omitempty" validate:"omitempty,dive"`
	ValidationData         []AttributeType   `json:"ValidationData,omitempty" validate:"omitempty,dive"`
}

func (AdminCreateUserRequest) ActionName() string { return "AdminCreateUser" }

type AdminGetUserRequest struct {
	UserRef
}

func (AdminGetUserRequest) ActionName() string { return "AdminGetUser" }

type AdminDeleteUserRequest struct {
	UserRef
}

func (AdminDeleteUserRequest) ActionName() string { return "AdminDeleteUser" }

type AdminDisableUserRequest struct {
	UserRef
}

func (AdminDisableUserRequest) ActionName() string { return "AdminDisableUser" }

type AdminEnableUserRequest struct {
	UserRef
}

func (AdminEnableUserRequest) ActionName() string { return "AdminEnableUser" }

type AdminConfirmSignUpRequest struct {
	UserRef
	ClientMetadata map[string]string `json:"ClientMetadata,omitempty"`
}

func (AdminConfirmSignUpRequest) ActionName() string { return "AdminConfirmSignUp" }

type AdminDeleteUserAttributesRequest struct {
	UserRef
	UserAttributeNames []string `json:"UserAttributeNames" validate:"required,min=1,max=32,dive,min=1,max=32,attrname"`
}

func (AdminDeleteUserAttributesRequest) ActionName() string { return "AdminDeleteUserAttributes" }

type AdminUpdateUserAttributesRequest struct {
	UserRef
	ClientMetadata map[string]string `json:"ClientMetadata,omitempty"`
	UserAttributes []AttributeType   `json:"UserAttributes" validate:"required,min=1,dive"`
}

func (AdminUpdateUserAttributesRequest) ActionName() string { return "AdminUpdateUserAttributes" }

type AdminResetUserPasswordRequest struct {
	UserRef
	ClientMetadata map[string]string `json:"ClientMetadata,omitempty"`
}

func (AdminResetUserPasswordRequest) ActionName() string { return "AdminResetUserPassword" }

type AdminSetUserPasswordRequest struct {
	UserRef
	Password  string `json:"Password" validate:"required,min=1,max=256,password"`
	Permanent *bool  `json:"Permanent,omitempty"`
}

func (AdminSetUserPasswordRequest) ActionName() string { return "AdminSetUserPassword" }

type AdminSetUserSettingsRequest struct {
	UserRef
	MFAOptions []MFAOptionType `json:"MFAOptions" validate:"required,dive"`
}

func (AdminSetUserSettingsRequest) ActionName() string { return "AdminSetUserSettings" }

type AdminSetUserMFAPreferenceRequest struct {
	UserRef
	SMSMfaSettings           *MFASettingsType `json:"SMSMfaSettings,omitempty"`
	SoftwareTokenMfaSettings *MFASettingsType `json:"SoftwareTokenMfaSettings,omitempty"`
}

func (AdminSetUserMFAPreferenceRequest) ActionName() string { return "AdminSetUserMFAPreference" }

type AdminUserGlobalSignOutRequest struct {
	UserRef
}

func (AdminUserGlobalSignOutRequest) ActionName() string { return "AdminUserGlobalSignOut" }

type AdminAddUserToGroupRequest struct {
	UserRef
	GroupName string `json:"GroupName" validate:"required,min=1,max=128,awsname"`
}

func (AdminAddUserToGroupRequest) ActionName() string { return "AdminAddUserToGroup" }

type AdminRemoveUserFromGroupRequest struct {
	UserRef
	GroupName string `json:"GroupName" validate:"required,min=1,max=128,awsname"`
}

func (AdminRemoveUserFromGroupRequest) ActionName() string { return "AdminRemoveUserFromGroup" }

type AdminListGroupsForUserRequest struct {
	UserRef
	Limit     *int64  `json:"Limit,omitempty" validate:"omitempty,min=0,max=60"`
	NextToken *string `json:"NextToken,omitempty" validate:"omitempty,min=1,nonblank"`
}

func (AdminListGroupsForUserRequest) ActionName() string { return "AdminListGroupsForUser" }

type AdminDisableProviderForUserRequest struct {
	User       *ProviderUserIdentifierType `json:"User" validate:"required"`
	UserPoolID string                      `json:"UserPoolId" validate:"required,min=1,max=55,poolid"`
}

func (AdminDisableProviderForUserRequest) ActionName() string { return "AdminDisableProviderForUser" }

type AdminLinkProviderForUserRequest struct {
	DestinationUser *ProviderUserIdentifierType `json:"DestinationUser" validate:"required"`
	SourceUser      *ProviderUserIdentifierType `json:"SourceUser" validate:"required"`
	UserPoolID      string                      `json:"UserPoolId" validate:"required,min=1,max=55,poolid"`
}

func (AdminLinkProviderForUserRequest) ActionName() string { return "AdminLinkProviderForUser" }

type AdminListUserAuthEventsRequest struct {
	UserRef
	MaxResults *int64  `json:"MaxResults,omitempty" validate:"omitempty,min=0,max=60"`
	NextToken  *string `json:"NextToken,omitempty" validate:"omitempty,min=1,nonblank"`
}

func (AdminListUserAuthEventsRequest) ActionName() string { return "AdminListUserAuthEvents" }

type AdminUpdateAuthEventFeedbackRequest struct {
	UserRef
	EventID       string `json:"EventId" validate:"required,min=1,max=50,eventid"`
	FeedbackValue string `json:"FeedbackValue" validate:"required,oneof=Valid Invalid"`
}

func (AdminUpdateAuthEventFeedbackRequest) ActionName() string { return "AdminUpdateAuthEventFeedback" }

type ListUsersRequest struct {
	PoolRef
	AttributesToGet []string `json:"AttributesToGet,omitempty" validate:"omitempty,dive,min=1,max=32,attrname"`
	Filter          *string  `json:"Filter,omitempty" validate:"omitempty,max=256"`
	Limit           *int64   `json:"Limit,omitempty" validate:"omitempty,min=0,max=60"`
	PaginationToken *string  `json:"PaginationToken,omitempty" validate:"omitempty,min=1,nonblank"`
}

func (ListUsersRequest) ActionName() string { return "ListUsers" }
