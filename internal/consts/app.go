package consts

const (
	// ApplicationName 应用名称
	ApplicationName = "Movie Catalog Server"

	// ApplicationVersion 后端版本
	ApplicationVersion = "1.0.0"
)
