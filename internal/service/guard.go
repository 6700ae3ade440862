package service

// assertOwner 归属校验，在取到最新记录后调用：
// 归属不匹配返回对应资源的无权限错误
func assertOwner(resourceOwnerID, viewerID int64, noPermissionErr error) error {
	if resourceOwnerID != viewerID {
		return noPermissionErr
	}
	return nil
}
