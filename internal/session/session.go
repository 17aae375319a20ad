// Package session 保存当前登录的店铺用户，并向查询层提供已校验的店铺 ID
//
// 状态机：Unloaded -> {Anonymous, Authenticated}；
// Anonymous --SignIn--> Authenticated；Authenticated --SignOut--> Anonymous。
// 不建模刷新状态，重新认证就是一次完整的 SignIn。
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"order_dash_v1/internal/model"
	"order_dash_v1/internal/tenant"
	"order_dash_v1/pkg/kv"
)

// State 会话状态
type State int

const (
	StateUnloaded State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unloaded"
	}
}

// 持久化键（固定）
const (
	KeyToken        = "session.token"
	KeyRefreshToken = "session.refresh_token"
	KeyStoreID      = "session.store_id"
	KeyStoreSlug    = "session.store_slug"
	KeyUser         = "session.user"
)

// AllKeys 登出时全部删除
var AllKeys = []string{KeyToken, KeyRefreshToken, KeyStoreID, KeyStoreSlug, KeyUser}

var (
	ErrNotLoaded    = errors.New("会话尚未加载")
	ErrAnonymous    = errors.New("未登录")
	ErrMissingToken = errors.New("缺少会话 token")
)

// User 会话中的店铺用户
type User struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	FullName string     `json:"full_name,omitempty"`
	Role     model.Role `json:"role"`
}

// Session 一次登录的完整信息
type Session struct {
	Token        string
	RefreshToken string
	StoreID      string
	StoreSlug    string
	User         User
}

// Store 会话对象，显式传递给使用方，只通过 Load / SignIn / SignOut 修改
type Store struct {
	kv kv.KV

	mu      sync.RWMutex
	state   State
	current *Session
}

func NewStore(backend kv.KV) *Store {
	return &Store{kv: backend, state: StateUnloaded}
}

// Load 从持久化存储恢复会话
// 缺少 token 或店铺 ID 非法时进入 Anonymous，并清掉残留的键
func (s *Store) Load(ctx context.Context) (State, error) {
	sess, err := s.read(ctx)
	if err != nil {
		if errors.Is(err, kv.ErrMiss) || errors.Is(err, tenant.ErrInvalidTenantID) || errors.Is(err, errCorrupted) {
			if derr := s.kv.Delete(ctx, AllKeys...); derr != nil {
				return s.State(), tenant.Backend("session clear", derr)
			}
			s.set(StateAnonymous, nil)
			return StateAnonymous, nil
		}
		return s.State(), tenant.Backend("session load", err)
	}

	s.set(StateAuthenticated, sess)
	return StateAuthenticated, nil
}

var errCorrupted = errors.New("会话数据损坏")

func (s *Store) read(ctx context.Context) (*Session, error) {
	token, err := s.kv.Get(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, kv.ErrMiss
	}
	rawID, err := s.kv.Get(ctx, KeyStoreID)
	if err != nil {
		return nil, err
	}
	storeID, err := tenant.ValidateStoreID(rawID)
	if err != nil {
		return nil, err
	}

	sess := &Session{Token: token, StoreID: storeID}
	if sess.RefreshToken, err = optional(ctx, s.kv, KeyRefreshToken); err != nil {
		return nil, err
	}
	if sess.StoreSlug, err = optional(ctx, s.kv, KeyStoreSlug); err != nil {
		return nil, err
	}
	rawUser, err := optional(ctx, s.kv, KeyUser)
	if err != nil {
		return nil, err
	}
	if rawUser != "" {
		if err := json.Unmarshal([]byte(rawUser), &sess.User); err != nil {
			return nil, fmt.Errorf("%w: %v", errCorrupted, err)
		}
	}
	return sess, nil
}

func optional(ctx context.Context, store kv.KV, key string) (string, error) {
	v, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrMiss) {
		return "", nil
	}
	return v, err
}

// SignIn 登录成功后持久化全部键
func (s *Store) SignIn(ctx context.Context, sess Session) error {
	storeID, err := tenant.ValidateStoreID(sess.StoreID)
	if err != nil {
		return err
	}
	if sess.Token == "" {
		return ErrMissingToken
	}
	sess.StoreID = storeID

	user, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	values := []struct{ key, value string }{
		{KeyToken, sess.Token},
		{KeyRefreshToken, sess.RefreshToken},
		{KeyStoreID, sess.StoreID},
		{KeyStoreSlug, sess.StoreSlug},
		{KeyUser, string(user)},
	}
	for _, v := range values {
		if err := s.kv.Set(ctx, v.key, v.value, 0); err != nil {
			// 写了一半的会话不能留下
			_ = s.kv.Delete(ctx, AllKeys...)
			return tenant.Backend("session save", err)
		}
	}

	s.set(StateAuthenticated, &sess)
	return nil
}

// SignOut 清除内存和持久化中的全部会话数据
func (s *Store) SignOut(ctx context.Context) error {
	if err := s.kv.Delete(ctx, AllKeys...); err != nil {
		return tenant.Backend("session clear", err)
	}
	s.set(StateAnonymous, nil)
	return nil
}

// UpdateTokens 刷新 token 后写回，店铺和用户不变
func (s *Store) UpdateTokens(ctx context.Context, token, refreshToken string) error {
	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()
	if cur == nil {
		return ErrAnonymous
	}
	next := *cur
	next.Token = token
	next.RefreshToken = refreshToken
	return s.SignIn(ctx, next)
}

func (s *Store) set(state State, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.current = sess
}

// State 当前状态
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Current 当前会话副本
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// StoreID 向查询层提供已校验的店铺 ID
func (s *Store) StoreID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.state {
	case StateUnloaded:
		return "", ErrNotLoaded
	case StateAnonymous:
		return "", ErrAnonymous
	}
	return tenant.ValidateStoreID(s.current.StoreID)
}

// Token 当前 access token，未登录为空
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
