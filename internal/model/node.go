package model

// NodeType identifies an entity in the deletable hierarchy.
type NodeType string

const (
	NodeTypeCabinet  NodeType = "cabinet"
	NodeTypeFolder   NodeType = "folder"
	NodeTypeDocument NodeType = "document"
)
