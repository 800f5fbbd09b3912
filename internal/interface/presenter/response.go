package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response は統一レスポンス構造を定義します
// エラーレスポンスはエラーハンドラー側で同じ外形（data/meta と対になる
// error/meta）に揃えられます
type Response struct {
	Data interface{} `json:"data"`
	Meta interface{} `json:"meta"`
}

// OK は成功レスポンスを返します
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Data: data,
		Meta: nil,
	})
}
