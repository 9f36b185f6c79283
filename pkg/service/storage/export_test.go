package storage

var (
	ObjectName = objectName
	PublicURL  = publicURL
)
