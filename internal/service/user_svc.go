package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"order_dash_v1/internal/api/dto"
	"order_dash_v1/internal/model"
	"order_dash_v1/internal/repository"
	"order_dash_v1/internal/tenant"
)

// ==================== StoreUserService 店铺成员管理 ====================

// StoreUserService 店铺成员管理；成员只属于创建时的店铺
type StoreUserService struct {
	users repository.StoreUserRepository
	log   *zap.Logger
}

// NewStoreUserService 创建成员服务
func NewStoreUserService(users repository.StoreUserRepository, log *zap.Logger) *StoreUserService {
	return &StoreUserService{users: users, log: log.Named("user")}
}

// Create 创建成员
func (s *StoreUserService) Create(ctx context.Context, storeID string, req *dto.CreateUserRequest) (*dto.UserInfo, error) {
	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	exists, err := s.users.ExistsByUsername(ctx, storeID, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.StoreUser{
		Username: req.Username,
		Password: hashed,
		FullName: req.FullName,
		Role:     role,
		IsActive: true,
	}
	if err := s.users.Create(ctx, storeID, user); err != nil {
		return nil, err
	}
	s.log.Info("创建店铺成员", zap.String("store_id", storeID), zap.String("username", user.Username), zap.String("role", string(role)))
	return toUserInfo(user), nil
}

// Get 成员详情
func (s *StoreUserService) Get(ctx context.Context, storeID string, id int64) (*dto.UserInfo, error) {
	user, err := s.users.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

// List 成员列表
func (s *StoreUserService) List(ctx context.Context, storeID string, req *dto.UserListRequest) (*dto.UserListResponse, error) {
	users, total, err := s.users.List(ctx, storeID, repository.UserFilter{
		Keyword:  req.Keyword,
		Role:     req.Role,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}
	list := make([]*dto.UserInfo, 0, len(users))
	for i := range users {
		list = append(list, toUserInfo(&users[i]))
	}
	return &dto.UserListResponse{Total: total, List: list}, nil
}

// Update 修改成员
// operatorID 为当前操作人（平台管理员操作时为 0）：不能停用或降级自己；
// 店铺至少保留一个启用的管理员
func (s *StoreUserService) Update(ctx context.Context, storeID string, operatorID, id int64, req *dto.UpdateUserRequest) (*dto.UserInfo, error) {
	user, err := s.users.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}

	role := user.Role
	if req.Role != "" {
		if role, err = model.ParseRole(req.Role); err != nil {
			return nil, ErrInvalidRole
		}
		fields["role"] = role
	}
	active := user.IsActive
	if req.IsActive != nil {
		active = *req.IsActive
		fields["is_active"] = active
	}

	losesAdmin := user.Role == model.RoleAdmin && user.IsActive && (role != model.RoleAdmin || !active)
	if losesAdmin {
		if id == operatorID {
			return nil, ErrCannotModifySelf
		}
		if err := s.ensureAnotherAdmin(ctx, storeID); err != nil {
			return nil, err
		}
	} else if id == operatorID && !active {
		return nil, ErrCannotModifySelf
	}

	if len(fields) == 0 {
		return toUserInfo(user), nil
	}
	if err := s.users.UpdateFields(ctx, storeID, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, storeID, id)
}

// Delete 删除成员（软删除）
func (s *StoreUserService) Delete(ctx context.Context, storeID string, operatorID, id int64) error {
	if id == operatorID {
		return ErrCannotModifySelf
	}
	user, err := s.users.GetByID(ctx, storeID, id)
	if err != nil {
		return err
	}
	if user.Role == model.RoleAdmin && user.IsActive {
		if err := s.ensureAnotherAdmin(ctx, storeID); err != nil {
			return err
		}
	}
	if err := s.users.Delete(ctx, storeID, id); err != nil {
		return err
	}
	s.log.Info("删除店铺成员", zap.String("store_id", storeID), zap.Int64("user_id", id))
	return nil
}

// CurrentRole 供 TenantContext 使用：每个请求按数据库里的状态鉴权
func (s *StoreUserService) CurrentRole(ctx context.Context, storeID string, userID int64) (model.Role, error) {
	user, err := s.users.GetByID(ctx, storeID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", tenant.ErrAccessDenied
		}
		return "", err
	}
	if !user.IsActive {
		return "", tenant.ErrAccessDenied
	}
	return user.Role, nil
}

// ensureAnotherAdmin 调用前目标本身是启用的管理员，因此至少需要 2 个
func (s *StoreUserService) ensureAnotherAdmin(ctx context.Context, storeID string) error {
	n, err := s.users.CountActiveAdmins(ctx, storeID)
	if err != nil {
		return err
	}
	if n < 2 {
		return ErrLastAdmin
	}
	return nil
}

// ==================== 密码 ====================

// ResetPassword 管理员重置成员密码
func (s *StoreUserService) ResetPassword(ctx context.Context, storeID string, id int64, newPassword string) error {
	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdateFields(ctx, storeID, id, map[string]interface{}{"password": hashed})
}

// ChangePassword 成员修改自己的密码
func (s *StoreUserService) ChangePassword(ctx context.Context, storeID string, id int64, req *dto.ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, storeID, id)
	if err != nil {
		return err
	}
	if !CheckPassword(user.Password, req.OldPassword) {
		return ErrInvalidOldPassword
	}
	return s.ResetPassword(ctx, storeID, id, req.NewPassword)
}
