package constants

const (
	HeaderRequestIDKey = "X-Request-ID"
)

const GatewayServiceName = "Hydro-Query-Gateway"

// 返回给调用方的错误信息, 需与旧版网关保持一致
const (
	MsgDomainIDRequired    = "domainId is required"
	MsgInvalidDocType      = "Invalid docType"
	MsgContestRequired     = "contest is required"
	MsgInvalidContestID    = "Invalid contest ObjectId"
	MsgUserIDRequired      = "_id is required"
	MsgUserIDNotInteger    = "_id must be an integer"
	MsgUserNotFound        = "User not found"
	MsgMongoConnectFailed  = "Failed to connect to MongoDB"
	MsgInvalidConfigFormat = "Invalid config format"
)
