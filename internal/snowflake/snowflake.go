// Package snowflake generates the unique IDs assigned to search history
// records. IDs are time-ordered, so history listings can tiebreak on ID.
package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

// Init creates the process-wide generator node. The node ID comes from
// configuration and must be unique across running instances (0-1023).
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// NextID generates a new unique ID. Init must have been called first.
func NextID() int64 {
	return node.Generate().Int64()
}
