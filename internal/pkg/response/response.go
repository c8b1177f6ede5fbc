package response

import (
	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/webapi/proxyutil"
)

func Success(c *gin.Context, data interface{}) {
	proxyutil.SuccessJson(c, data)
}
