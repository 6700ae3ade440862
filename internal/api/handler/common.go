package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"playtube-go/internal/api/dto"
	"playtube-go/internal/api/response"

	"github.com/gin-gonic/gin"
)

// parsePageQuery 解析分页查询参数，非法或缺省时回退默认值
func parsePageQuery(c *gin.Context) *dto.PageQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	q := &dto.PageQuery{Page: page, Limit: limit}
	q.Normalize()
	return q
}

// parseIDParam 解析路径中的数字标识符，非法时直接写出错误响应
func parseIDParam(c *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.InvalidIdentifier(c, message)
		return 0, false
	}
	return id, true
}

// errMalformedUpload 上传表单解析失败，属客户端错误
var errMalformedUpload = errors.New("上传表单格式非法")

// saveTempFile 将上传文件暂存到本地临时目录。
// 字段未携带文件时返回空路径且不报错，表单本身损坏时报 errMalformedUpload
func saveTempFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", errMalformedUpload, err)
	}

	path := filepath.Join(os.TempDir(),
		fmt.Sprintf("playtube_%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// handleTempFileError 区分表单损坏与本地写入失败
func handleTempFileError(c *gin.Context, err error) {
	if errors.Is(err, errMalformedUpload) {
		response.BadRequest(c, "上传表单格式非法")
		return
	}
	response.InternalError(c, "保存上传文件失败")
}

// removeTempFiles 清理暂存文件
func removeTempFiles(paths ...string) {
	for _, path := range paths {
		if path != "" {
			_ = os.Remove(path)
		}
	}
}
