// Package token кодирует и проверяет подписанные JWT-пары (subject, exp, kind).
// Отзыв токенов не поддерживается: единственный механизм инвалидации - истечение срока.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shaderhub/internal/apperrors"
)

const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims - расшифрованное содержимое токена
type Claims struct {
	UserID   int64
	Kind     string
	ExpireAt time.Time
}

type tokenClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	method jwt.SigningMethod
}

// NewCodec создает кодек с общим секретом и алгоритмом подписи из конфига.
// Разрешены только HMAC-алгоритмы (HS256/HS384/HS512).
func NewCodec(secret, algorithm string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("SECRET_KEY не установлен")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("неизвестный алгоритм подписи: %s", algorithm)
	}

	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("неподдерживаемый алгоритм подписи: %s", algorithm)
	}

	return &Codec{
		secret: []byte(secret),
		method: method,
	}, nil
}

// Issue выпускает токен вида kind для пользователя userID со сроком жизни ttl
func (c *Codec) Issue(userID int64, kind string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := tokenClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tokenString, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// Verify проверяет подпись и срок действия токена.
// Возвращает apperrors.ErrTokenExpired для просроченного токена
// и apperrors.ErrInvalidToken для любого другого дефекта:
// подделанная подпись, чужой алгоритм, отсутствующие claims.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	var claims tokenClaims

	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != c.method.Alg() {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		// Просрочку отличаем от всего остального: подпись при этом уже проверена
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.Subject == "" || (claims.Kind != KindAccess && claims.Kind != KindRefresh) {
		return nil, apperrors.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	return &Claims{
		UserID:   userID,
		Kind:     claims.Kind,
		ExpireAt: claims.ExpiresAt.Time,
	}, nil
}
