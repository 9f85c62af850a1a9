package userpools

type AdminForgetDeviceRequest struct {
	UserRef
	DeviceKey string `json:"DeviceKey" validate:"required,min=1,max=55,devicekey"`
}

func (AdminForgetDeviceRequest) ActionName() string { return "AdminForgetDevice" }

type AdminGetDeviceRequest struct {
	UserRef
	DeviceKey string `json:"DeviceKey" validate:"required,min=1,max=55,devicekey"`
}

func (AdminGetDeviceRequest) ActionName() string { return "AdminGetDevice" }

type AdminListDevicesRequest struct {
	UserRef
	Limit           *int64  `json:"Limit,omitempty" validate:"omitempty,min=0,max=60"`
	PaginationToken *string `json:"PaginationToken,omitempty" validate:"omitempty,min=1,nonblank"`
}

func (AdminListDevicesRequest) ActionName() string { return "AdminListDevices" }

type AdminUpdateDeviceStatusRequest struct {
	UserRef
	DeviceKey              string  `json:"DeviceKey" validate:"required,min=1,max=55,devicekey"`
	DeviceRememberedStatus *string `json:"DeviceRememberedStatus,omitempty" validate:"omitempty,oneof=remembered not_remembered"`
}

func (AdminUpdateDeviceStatusRequest) ActionName() string { return "AdminUpdateDeviceStatus" }

type ConfirmDeviceRequest struct {
	AccessToken                string                          `json:"AccessToken" validate:"required,accesstoken"`
	DeviceKey                  string                          `json:"DeviceKey" validate:"required,min=1,max=55,devicekey"`
	DeviceName                 *string                         `json:"DeviceName,omitempty" validate:"omitempty,min=1,max=1024"`
	DeviceSecretVerifierConfig *DeviceSecretVerifierConfigType `json:"DeviceSecretVerifierConfig,omitempty"`
}

func (ConfirmDeviceRequest) ActionName() string { return "ConfirmDevice" }
