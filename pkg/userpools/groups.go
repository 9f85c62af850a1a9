package userpools

type GroupRef struct {
	GroupName  string `json:"GroupName" validate:"required,min=1,max=128,awsname"`
	UserPoolID string `json:"UserPoolId" validate:"required,min=1,max=55,poolid"`
}

type CreateGroupRequest struct {
	GroupRef
	Description *string `json:"Description,omitempty" validate:"omitempty,max=2048"`
	Precedence  *int64  `json:"Precedence,omitempty" validate:"omitempty,min=0"`
	RoleArn     *string `json:"RoleArn,omitempty" validate:"omitempty,min=20,max=2048,awsarn"`
}

func (CreateGroupRequest) ActionName() string { return "CreateGroup" }

type DeleteGroupRequest struct {
	GroupRef
}

func (DeleteGroupRequest) ActionName() string { return "DeleteGroup" }

type GetGroupRequest struct {
	GroupRef
}

func (GetGroupRequest) ActionName() string { return "GetGroup" }

type UpdateGroupRequest struct {
	GroupRef
	Description *string `json:"Description,omitempty" validate:"omitempty,max=2048"`
	Precedence  *int64  `json:"Precedence,omitempty" validate:"omitempty,min=0"`
	RoleArn     *string `json:"RoleArn,omitempty" validate:"omitempty,min=20,max=2048,awsarn"`
}

func (UpdateGroupRequest) ActionName() string { return "UpdateGroup" }

type ListGroupsRequest struct {
	PoolRef
	Limit     *int64  `json:"Limit,omitempty" validate:"omitempty,min=0,max=60"`
	NextToken *string `json:"NextToken,omitempty" validate:"omitempty,min=1,nonblank"`
}

func (ListGroupsRequest) ActionName() string { return "ListGroups" }
