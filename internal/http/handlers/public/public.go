package public

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/mypham-next/internal/cache"
	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/http/response"
	"github.com/mypham-next/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// GetConfig 获取站点全局配置
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	data := map[string]interface{}{
		"languages": constants.SupportedLocales,
		"currency":  constants.SiteCurrencyVND,
		"shipping": map[string]interface{}{
			"free_shipping_threshold": h.Config.Order.FreeShippingThreshold,
			"shipping_fee":            h.Config.Order.ShippingFee,
		},
		"cart": map[string]interface{}{
			"lock_price_at_add": h.Config.Cart.LockPriceAtAdd,
		},
	}

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}

// GetProducts 获取商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	// 获取分页参数
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	input := service.ProductListInput{
		Page:          page,
		PageSize:      pageSize,
		Search:        strings.TrimSpace(c.Query("search")),
		Category:      strings.TrimSpace(c.Query("category")),
		Subcategories: parseQueryList(c, "subcategories"),
		SkinTypes:     parseQueryList(c, "skin_types"),
		Benefits:      parseQueryList(c, "benefits"),
		PriceMin:      parseQueryInt64(c, "price_min"),
		PriceMax:      parseQueryInt64(c, "price_max"),
		OnSale:        parseQueryBool(c, "on_sale"),
		Sort:          strings.TrimSpace(c.Query("sort")),
	}

	products, total, err := h.ProductService.ListPublic(input)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}

	// 统一响应格式
	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetProductBySlug 根据 slug 获取商品详情
func (h *Handler) GetProductBySlug(c *gin.Context) {
	product, err := h.ProductService.GetPublicBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, product)
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// GetFacets 获取筛选维度（分类/品牌/肤质/功效）
func (h *Handler) GetFacets(c *gin.Context) {
	facets, err := h.CatalogService.ListFacets()
	if err != nil {
		respondError(c, response.CodeInternal, "error.facet_fetch_failed", err)
		return
	}
	response.Success(c, facets)
}

// parseQueryList 解析可重复或逗号分隔的查询参数
func parseQueryList(c *gin.Context, name string) []string {
	values := c.QueryArray(name)
	result := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

func parseQueryInt64(c *gin.Context, name string) *int64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return nil
	}
	return &value
}

func parseQueryBool(c *gin.Context, name string) *bool {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
