// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package service

import (
	"sort"

	"github.com/jmoliner/herdsync/models"
)

// Consolidate collapses a set of raw queue entries into the minimal
// equivalent set: exactly one entry per (table, record) pair that is not
// fully cancelled out. Entries for the same pair are folded in ascending
// creation-time order; the output is sorted by each pair's earliest
// timestamp so replay order stays deterministic across records.
//
// Consolidate is pure and performs no I/O. It is used both by the queue
// store on every enqueue and by the orchestrator before a push.
func Consolidate(entries []models.QueueEntry) []models.ConsolidatedEntry {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]models.QueueEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt < sorted[j].CreatedAt
	})

	consolidated := make(map[string]*models.ConsolidatedEntry, len(sorted))
	for _, entry := range sorted {
		key := models.EntryKey(entry.TableName, entry.RecordID)

		existing, ok := consolidated[key]
		if !ok {
			consolidated[key] = toConsolidatedEntry(entry)
			continue
		}

		reduced := reduceEntries(existing, entry)
		if reduced == nil {
			// CREATE followed by DELETE: the record never existed from
			// the server's perspective, drop it entirely.
			delete(consolidated, key)
			continue
		}

		consolidated[key] = reduced
	}

	result := make([]models.ConsolidatedEntry, 0, len(consolidated))
	for _, entry := range consolidated {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt < result[j].CreatedAt
		}
		return models.EntryKey(result[i].TableName, result[i].RecordID) <
			models.EntryKey(result[j].TableName, result[j].RecordID)
	})

	return result
}

// reduceEntries folds one incoming entry into the accumulated entry for the
// same (table, record). A nil result means the pair cancels out entirely.
func reduceEntries(current *models.ConsolidatedEntry, incoming models.QueueEntry) *models.ConsolidatedEntry {
	next := *current
	next.SourceEntryIDs = append(append([]string(nil), current.SourceEntryIDs...), incoming.ID)
	next.ClientVersion = incoming.ClientVersion

	switch current.Action {
	case models.ActionCreate:
		if incoming.Action == models.ActionDelete {
			return nil
		}
		next.Action = models.ActionCreate
		next.Payload = mergePayloads(current.Payload, incoming.Payload)

	case models.ActionUpdate:
		if incoming.Action == models.ActionDelete {
			next.Action = models.ActionDelete
			next.Payload = nil
			break
		}
		next.Action = models.ActionUpdate
		next.Payload = mergePayloads(current.Payload, incoming.Payload)

	case models.ActionDelete:
		if incoming.Action == models.ActionCreate {
			// Recreate after a queued delete: the record still exists on
			// the server, so the pair collapses to an update.
			next.Action = models.ActionUpdate
			next.Payload = mergePayloads(nil, incoming.Payload)
			break
		}
		next.Action = models.ActionDelete
		next.Payload = nil
	}

	return &next
}

// mergePayloads overlays incoming on top of previous, shallowly: keys from
// incoming overwrite the same keys from previous, keys only in previous are
// preserved. Values are replaced whole, never merged recursively.
func mergePayloads(previous, incoming map[string]any) map[string]any {
	merged := make(map[string]any, len(previous)+len(incoming))
	for k, v := range previous {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	return merged
}

func toConsolidatedEntry(entry models.QueueEntry) *models.ConsolidatedEntry {
	return &models.ConsolidatedEntry{
		TableName:      entry.TableName,
		RecordID:       entry.RecordID,
		Action:         entry.Action,
		Payload:        entry.Payload,
		ClientVersion:  entry.ClientVersion,
		CreatedAt:      entry.CreatedAt,
		SourceEntryIDs: []string{entry.ID},
	}
}
