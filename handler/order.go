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

type Order struct {
	Config         *config.Config
	OrderService   service.IOrderService
	PaymentService service.IPaymentService
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	order := r.Group("/v1/order")
	order.Use(authorize)
	order.POST("/place", context.Wrap(h.Place))
	order.POST("/commit", context.Wrap(h.Commit))
	order.POST("/pay", context.Wrap(h.Pay))
	order.POST("/check", context.Wrap(h.Check))
	order.POST("/comment", context.Wrap(h.Comment))
	order.GET("/list", context.Wrap(h.List))
}

// Place 结算页
func (h *Order) Place(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	var req types.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeIncompleteData, "数据不完整")
	}

	resp, err := h.OrderService.Place(c, uid, req.SkuIDs)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Commit 提交订单
func (h *Order) Commit(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	var req types.CommitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeIncompleteData, "数据不完整")
	}

	orderSn, err := h.OrderService.Commit(c, uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, &types.CommitOrderResponse{OrderSn: orderSn})
	return nil
}

// Pay 发起支付，返回收银台地址
func (h *Order) Pay(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	var req types.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeIncompleteData, "数据不完整")
	}

	resp, err := h.PaymentService.Pay(c, uid, req.OrderSn)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Check 轮询支付结果
// 用请求自身的 context，客户端断开后轮询立即停止
func (h *Order) Check(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	var req types.CheckPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeIncompleteData, "数据不完整")
	}

	resp, err := h.PaymentService.Check(c.Request.Context(), uid, req.OrderSn)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Comment 订单评价
func (h *Order) Comment(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	var req types.CommentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(response.CodeIncompleteData, "数据不完整")
	}

	if err := h.OrderService.Comment(c, uid, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// List 订单列表
func (h *Order) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(response.CodeNotAuthenticated, err.Error())
	}

	cursor, _ := strconv.ParseInt(c.DefaultQuery("cursor", "0"), 10, 64)
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	resp, err := h.OrderService.List(c, uid, cursor, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
