package idgen

import (
	"fmt"
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}

// GenerateTicketNo builds the human-facing ticket number, e.g. TKT-1876543210.
func GenerateTicketNo() string {
	return fmt.Sprintf("TKT-%d", node.Generate().Int64())
}
