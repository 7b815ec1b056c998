package handler

import (
	"strconv"

	"FreshMall/config"
	"FreshMall/middleware"
	"FreshMall/pkg/context"
	"FreshMall/pkg/response"
	"FreshMall/service"
	"FreshMall/types"

	"github.com/gin-gonic/gin"
)

type Goods struct {
	Config       *config.Config
	GoodsService service.IGoodsService
}

func (h *Goods) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	// 浏览类接口游客可访问，登录后附带购物车数目
	goods := r.Group("/v1/goods")
	goods.GET("/index", context.Wrap(h.Index))
	goods.GET("/detail/:sku_id", context.Wrap(h.Detail))
	goods.GET("/list/:type_id", context.Wrap(h.List))

	auth := r.Group("/v1/goods")
	auth.Use(authorize)
	auth.GET("/history", context.Wrap(h.History))
	auth.POST("/sku", context.Wrap(h.CreateSKU))
}

// currentUser 游客接口取不到 user_id 时按未登录处理
func currentUser(c *gin.Context) uint64 {
	uid, err := context.GetUserID(c)
	if err != nil {
		return 0
	}
	return uid
}

func (h *Goods) Index(c *gin.Context) error {
	resp, err := h.GoodsService.Index(c, currentUser(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Goods) Detail(c *gin.Context) error {
	skuID, err := strconv.ParseUint(c.Param("sku_id"), 10, 64)
	if err != nil || skuID == 0 {
		return response.NewError(response.CodeIncompleteData, "商品不存在")
	}

	resp, err := h.GoodsService.Detail(c, currentUser(c), skuID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Goods) List(c *gin.Context) error {
	typeID, err := strconv.ParseUint(c.Param("type_id"), 10, 64)
	if err != nil || typeID == 0 {
		return response.NewError(response.CodeIncompleteData, "分类不存在")
	}

	sort := c.DefaultQuery("sort", "default")
	cursor, _ := strconv.ParseInt(c.DefaultQuery("cursor", "0"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.GoodsService.List(c, currentUser(c), typeID, sort, cursor, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Goods) History(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	resp, err := h.GoodsService.BrowseHistory(c, uid)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Goods) CreateSKU(c *gin.Context) error {
	var req types.CreateSkuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeIncompleteData, "数据不完整")
	}

	if err := h.GoodsService.CreateSKU(c, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
