package constants

const (
	ListDocumentPath  = "/hydro/document"   // 获取比赛或题目列表
	ListRecordPath    = "/hydro/record"     // 获取比赛提交记录
	GetUserPath       = "/hydro/user"       // 获取用户名
	ListUserGroupPath = "/hydro/user/group" // 获取用户组列表
)

const (
	HealthPath  = "/health"
	MetricsPath = "/metrics"
)

// 数据库中的集合名
const (
	DocumentCollection  = "document"
	RecordCollection    = "record"
	UserCollection      = "user"
	UserGroupCollection = "user.group"
)
