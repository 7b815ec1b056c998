package handler

import (
	"FreshMall/config"
	"FreshMall/middleware"
	"FreshMall/pkg/context"
	"FreshMall/pkg/response"
	"FreshMall/service"
	"FreshMall/types"

	"github.com/gin-gonic/gin"
)

type Cart struct {
	Config      *config.Config
	CartService service.ICartService
}

func (h *Cart) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	cart := r.Group("/v1/cart")
	cart.Use(authorize)
	cart.POST("/add", context.Wrap(h.Add))
	cart.POST("/update", context.Wrap(h.Update))
	cart.POST("/delete", context.Wrap(h.Delete))
	cart.GET("/info", context.Wrap(h.Info))
}

func (h *Cart) Add(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	var req types.CartMutateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeIncompleteData, "数据不完整")
	}

	total, err := h.CartService.Add(c, uid, req.SkuID, req.Count)
	if err != nil {
		return err
	}
	response.Success(c, &types.CartMutateResponse{TotalCount: total})
	return nil
}

func (h *Cart) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	var req types.CartMutateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeIncompleteData, "数据不完整")
	}

	total, err := h.CartService.Update(c, uid, req.SkuID, req.Count)
	if err != nil {
		return err
	}
	response.Success(c, &types.CartMutateResponse{TotalCount: total})
	return nil
}

func (h *Cart) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	var req types.CartMutateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeIncompleteData, "数据不完整")
	}

	total, err := h.CartService.Remove(c, uid, req.SkuID)
	if err != nil {
		return err
	}
	response.Success(c, &types.CartMutateResponse{TotalCount: total})
	return nil
}

func (h *Cart) Info(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	resp, err := h.CartService.List(c, uid)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
