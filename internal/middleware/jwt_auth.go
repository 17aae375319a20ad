package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"order_dash_v1/internal/model"
	"order_dash_v1/pkg/kv"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey       string        // 签名密钥
	AccessTokenTTL  time.Duration // Access Token 有效期
	RefreshTokenTTL time.Duration // Refresh Token 有效期
	Issuer          string        // 签发者
}

// TokenKind 账号类型
type TokenKind string

const (
	KindTenant   TokenKind = "tenant"   // 店铺成员
	KindPlatform TokenKind = "platform" // 平台管理员
)

const (
	subjectAccess  = "access"
	subjectRefresh = "refresh"
	denyKeyPrefix  = "jwt:deny:"
)

var (
	ErrTokenInvalid = errors.New("Token 无效或已过期")
	ErrTokenRevoked = errors.New("Token 已注销")
	ErrTokenType    = errors.New("Token 类型错误")
)

// ==================== Claims 定义 ====================

// UserClaims 用户声明，jti 用于注销
type UserClaims struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Kind      TokenKind `json:"kind"`
	Role      string    `json:"role,omitempty"`
	StoreID   string    `json:"store_id,omitempty"`
	StoreSlug string    `json:"store_slug,omitempty"`
	jwt.RegisteredClaims
}

// Identity 签发 token 所需的身份信息
type Identity struct {
	UserID    int64
	Username  string
	Kind      TokenKind
	Role      string
	StoreID   string
	StoreSlug string
}

// TokenPair 登录/刷新返回
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ==================== JWTManager ====================

// JWTManager 负责签发、解析、注销 token
type JWTManager struct {
	cfg  JWTConfig
	deny kv.KV
	now  func() time.Time
}

// NewJWTManager deny 保存已注销的 jti（Redis 或内存）
func NewJWTManager(cfg JWTConfig, deny kv.KV) *JWTManager {
	return &JWTManager{cfg: cfg, deny: deny, now: time.Now}
}

// Config 当前配置
func (m *JWTManager) Config() JWTConfig { return m.cfg }

func (m *JWTManager) sign(id Identity, subject string, ttl time.Duration) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(ttl)
	claims := &UserClaims{
		UserID:    id.UserID,
		Username:  id.Username,
		Kind:      id.Kind,
		Role:      id.Role,
		StoreID:   id.StoreID,
		StoreSlug: id.StoreSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.cfg.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.SecretKey))
	return signed, exp, err
}

// GenerateTokenPair 生成 Token 对
func (m *JWTManager) GenerateTokenPair(id Identity) (*TokenPair, error) {
	access, exp, err := m.sign(id, subjectAccess, m.cfg.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, _, err := m.sign(id, subjectRefresh, m.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}

// ==================== Token 解析 ====================

// ParseToken 解析并校验签名、有效期、签发者
func (m *JWTManager) ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(m.cfg.SecretKey), nil
	}, jwt.WithIssuer(m.cfg.Issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Verify 解析 token 并检查类型与注销状态
func (m *JWTManager) Verify(ctx context.Context, tokenString, subject string) (*UserClaims, error) {
	claims, err := m.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Subject != subject {
		return nil, ErrTokenType
	}
	revoked, err := m.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// VerifyRefresh 校验 Refresh Token
func (m *JWTManager) VerifyRefresh(ctx context.Context, tokenString string) (*UserClaims, error) {
	return m.Verify(ctx, tokenString, subjectRefresh)
}

// ==================== 注销（黑名单） ====================

// Revoke 把 jti 加入黑名单，保留到 token 自然过期
func (m *JWTManager) Revoke(ctx context.Context, claims *UserClaims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(m.now())
	}
	if ttl <= 0 {
		return nil
	}
	return m.deny.Set(ctx, denyKeyPrefix+claims.ID, "1", ttl)
}

// IsRevoked jti 是否已注销
func (m *JWTManager) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := m.deny.Get(ctx, denyKeyPrefix+jti)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, kv.ErrMiss) {
		return false, nil
	}
	return false, err
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
	ContextKeyKind     = "kind"
	ContextKeyStoreID  = "store_id"
	ContextKeyClaims   = "claims"
)

// BearerToken 从 Authorization Header 取出 token
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// JWTAuth JWT 认证中间件，只接受指定账号类型的 Access Token
func (m *JWTManager) JWTAuth(kind TokenKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			abort(c, http.StatusUnauthorized, "未提供认证信息")
			return
		}
		raw, ok := BearerToken(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "认证格式错误，应为 Bearer {token}")
			return
		}

		claims, err := m.Verify(c.Request.Context(), raw, subjectAccess)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenRevoked), errors.Is(err, ErrTokenType):
				abort(c, http.StatusUnauthorized, err.Error())
			default:
				abort(c, http.StatusServiceUnavailable, "认证服务暂不可用")
			}
			return
		}
		if claims.Kind != kind {
			abort(c, http.StatusForbidden, "无权限访问")
			return
		}

		// 注入用户信息到 Context
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, claims.Role)
		c.Set(ContextKeyKind, claims.Kind)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// RequireRole 角色权限校验中间件，role 按全序比较
func RequireRole(min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextKeyRole)
		if !exists {
			abort(c, http.StatusUnauthorized, "未获取到用户角色")
			return
		}
		if !model.Role(role.(string)).AtLeast(min) {
			abort(c, http.StatusForbidden, "无权限访问")
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}

// ==================== 辅助函数 ====================

// GetUserID 从 Context 获取用户 ID
func GetUserID(c *gin.Context) int64 {
	if id, exists := c.Get(ContextKeyUserID); exists {
		return id.(int64)
	}
	return 0
}

// GetUsername 从 Context 获取用户名
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		return name.(string)
	}
	return ""
}

// GetUserRole 从 Context 获取用户角色
func GetUserRole(c *gin.Context) model.Role {
	if role, exists := c.Get(ContextKeyRole); exists {
		return model.Role(role.(string))
	}
	return ""
}

// GetUserClaims 从 Context 获取完整 Claims
func GetUserClaims(c *gin.Context) *UserClaims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		return claims.(*UserClaims)
	}
	return nil
}
