package i18n

import (
	"fmt"
	"strings"

	"github.com/mypham-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// ResolveLocale 解析请求语言（优先 query，其次 Accept-Language，默认 vi-VN）
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LocaleViVN
	}
	if locale := normalizeLocale(c.Query("locale")); locale != "" {
		return locale
	}
	if locale := normalizeLocale(c.GetHeader("Accept-Language")); locale != "" {
		return locale
	}
	return constants.LocaleViVN
}

// T 按语言取文案，缺失时按回退顺序查找，最后返回 key 本身
func T(locale, key string) string {
	locale = normalizeLocale(locale)
	if locale != "" {
		if msg, ok := messages[locale][key]; ok {
			return msg
		}
	}
	for _, fallback := range constants.SupportedLocales {
		if msg, ok := messages[fallback][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf 按语言取带占位符的文案并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	template := T(locale, key)
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

func normalizeLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	// Accept-Language 可能携带权重列表，只取第一个语言标签
	if idx := strings.IndexAny(raw, ",;"); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "vi"):
		return constants.LocaleViVN
	case strings.HasPrefix(lower, "en"):
		return constants.LocaleEnUS
	}
	return ""
}
