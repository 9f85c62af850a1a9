package userpools

import "sort"

const (
	samplePool   = `"UserPoolId":"us-east-1_EXAMPLE"`
	sampleUser   = `"UserPoolId":"us-east-1_EXAMPLE","Username":"john"`
	sampleClient = `"ClientId":"exampleclient1"`
	sampleToken  = `"AccessToken":"eyJraWQiOiJleGFtcGxl.payload.signature"`
	sampleDevice = `"DeviceKey":"us-east-1_0a1b2c3d-4e5f"`
	sampleGroup  = `"UserPoolId":"us-east-1_EXAMPLE","GroupName":"admins"`
)

// samples guarda o menor corpo válido de cada action.
var samples = map[string]string{
	"AdminCreateUser":              `{` + sampleUser + `}`,
	"AdminGetUser":                 `{` + sampleUser + `}`,
	"AdminDeleteUser":              `{` + sampleUser + `}`,
	"AdminDisableUser":             `{` + sampleUser + `}`,
	"AdminEnableUser":              `{` + sampleUser + `}`,
	"AdminConfirmSignUp":           `{` + sampleUser + `}`,
	"AdminDeleteUserAttributes":    `{` + sampleUser + `,"UserAttributeNames":["email"]}`,
	"AdminUpdateUserAttributes":    `{` + sampleUser + `,"UserAttributes":[{"Name":"email","Value":"john@example.com"}]}`,
	"AdminResetUserPassword":       `{` + sampleUser + `}`,
	"AdminSetUserPassword":         `{` + sampleUser + `,"Password":"Secret123!"}`,
	"AdminSetUserSettings":         `{` + sampleUser + `,"MFAOptions":[{"AttributeName":"phone_number","DeliveryMedium":"SMS"}]}`,
	"AdminSetUserMFAPreference":    `{` + sampleUser + `}`,
	"AdminUserGlobalSignOut":       `{` + sampleUser + `}`,
	"AdminAddUserToGroup":          `{` + sampleUser + `,"GroupName":"admins"}`,
	"AdminRemoveUserFromGroup":     `{` + sampleUser + `,"GroupName":"admins"}`,
	"AdminListGroupsForUser":       `{` + sampleUser + `}`,
	"AdminDisableProviderForUser":  `{` + samplePool + `,"User":{"ProviderName":"Google"}}`,
	"AdminLinkProviderForUser":     `{` + samplePool + `,"DestinationUser":{"ProviderName":"Cognito"},"SourceUser":{"ProviderName":"Google"}}`,
	"AdminListUserAuthEvents":      `{` + sampleUser + `}`,
	"AdminUpdateAuthEventFeedback": `{` + sampleUser + `,"EventId":"evt-1","FeedbackValue":"Valid"}`,
	"ListUsers":                    `{` + samplePool + `}`,

	"AdminForgetDevice":       `{` + sampleUser + `,` + sampleDevice + `}`,
	"AdminGetDevice":          `{` + sampleUser + `,` + sampleDevice + `}`,
	"AdminListDevices":        `{` + sampleUser + `}`,
	"AdminUpdateDeviceStatus": `{` + sampleUser + `,` + sampleDevice + `}`,
	"ConfirmDevice":           `{` + sampleToken + `,` + sampleDevice + `}`,

	"CreateGroup": `{` + sampleGroup + `}`,
	"DeleteGroup": `{` + sampleGroup + `}`,
	"GetGroup":    `{` + sampleGroup + `}`,
	"UpdateGroup": `{` + sampleGroup + `}`,
	"ListGroups":  `{` + samplePool + `}`,

	"AdminInitiateAuth":           `{` + samplePool + `,` + sampleClient + `,"AuthFlow":"ADMIN_USER_PASSWORD_AUTH"}`,
	"AdminRespondToAuthChallenge": `{` + samplePool + `,` + sampleClient + `,"ChallengeName":"NEW_PASSWORD_REQUIRED"}`,
	"InitiateAuth":                `{` + sampleClient + `,"AuthFlow":"USER_PASSWORD_AUTH"}`,
	"RespondToAuthChallenge":      `{` + sampleClient + `,"ChallengeName":"SMS_MFA"}`,
	"AssociateSoftwareToken":      `{}`,
	"ChangePassword":              `{` + sampleToken + `,"PreviousPassword":"Old123!","ProposedPassword":"New123!"}`,
	"ConfirmForgotPassword":       `{` + sampleClient + `,"Username":"john","ConfirmationCode":"123456","Password":"Secret123!"}`,
	"ConfirmSignUp":               `{` + sampleClient + `,"Username":"john","ConfirmationCode":"123456"}`,
	"SignUp":                      `{` + sampleClient + `,"Username":"john","Password":"Secret123!"}`,
	"ForgotPassword":              `{` + sampleClient + `,"Username":"john"}`,
	"GetUser":                     `{` + sampleToken + `}`,
	"GlobalSignOut":               `{` + sampleToken + `}`,
	"DeleteUser":                  `{` + sampleToken + `}`,

	"AddCustomAttributes":    `{` + samplePool + `,"CustomAttributes":[{"Name":"tenant","AttributeDataType":"String"}]}`,
	"CreateIdentityProvider": `{` + samplePool + `,"ProviderName":"Google","ProviderType":"Google"}`,
	"CreateResourceServer":   `{` + samplePool + `,"Identifier":"https://api.example.com","Name":"api"}`,
	"CreateUserImportJob":    `{` + samplePool + `,"CloudWatchLogsRoleArn":"arn:aws:iam::123456789012:role/import","JobName":"import"}`,
	"CreateUserPool":         `{"PoolName":"example"}`,
	"CreateUserPoolClient":   `{` + samplePool + `,"ClientName":"app"}`,
	"DeleteUserPool":         `{` + samplePool + `}`,
	"DescribeUserPool":       `{` + samplePool + `}`,
	"ListUserPools":          `{"MaxResults":10}`,
	"DescribeUserPoolClient": `{` + samplePool + `,` + sampleClient + `}`,
	"DeleteUserPoolClient":   `{` + samplePool + `,` + sampleClient + `}`,
}

// Sample retorna um corpo mínimo válido para a action.
func Sample(name string) (string, bool) {
	body, ok := samples[name]
	return body, ok
}

// SampleNames lista as actions com exemplo disponível.
func SampleNames() []string {
	out := make([]string, 0, len(samples))
	for name := range samples {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
