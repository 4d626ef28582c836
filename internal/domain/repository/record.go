// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// Filter selects rows by exact match on column values, e.g. {"customer_id": id}.
// An empty filter lists every row.
type Filter map[string]any

// Patch is a partial update keyed by column name. Only the listed columns change.
type Patch map[string]any
