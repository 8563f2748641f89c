// Package hdfs defines the entities and contracts for relaying file
// operations to the storage cluster's WebHDFS endpoint.
package hdfs
