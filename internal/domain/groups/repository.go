package groups

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	ListGroups(ctx context.Context) ([]ChitGroup, error)
	GetGroupByID(ctx context.Context, groupID string) (*ChitGroup, error)
	LockGroup(ctx context.Context, groupID string) (*ChitGroup, error)
	CreateGroup(ctx context.Context, group *ChitGroup) error
	UpdateGroup(ctx context.Context, group *ChitGroup) error
	DeleteGroup(ctx context.Context, groupID string) (bool, error)

	MemberExists(ctx context.Context, memberID string) (bool, error)
	ListGroupMembers(ctx context.Context, groupID string) ([]GroupMember, error)
	IsGroupMember(ctx context.Context, groupID, memberID string) (bool, error)
	CountGroupMembers(ctx context.Context, groupID string) (int64, error)
	CreateGroupMember(ctx context.Context, groupMember *GroupMember) error
}
