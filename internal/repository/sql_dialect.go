package repository

import (
	"strings"

	"gorm.io/gorm"
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

func likeOperatorByDialect(dialect string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return "ILIKE"
	default:
		return "LIKE"
	}
}

// likeOperator 返回当前方言的模糊匹配操作符。
func likeOperator(db *gorm.DB) string {
	return likeOperatorByDialect(dbDialectName(db))
}

// jsonArrayLikePattern 生成 JSON 字符串数组的包含匹配模式。
// 数组列按 JSON 文本存储，元素匹配统一用 `"value"` 片段做 LIKE，
// sqlite 与 postgres 均适用。
func jsonArrayLikePattern(value string) string {
	return `%"` + strings.TrimSpace(value) + `"%`
}
