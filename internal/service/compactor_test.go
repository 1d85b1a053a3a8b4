// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoliner/herdsync/models"
)

func entry(id, table, recordID string, action models.SyncAction, payload map[string]any, version, createdAt int64) models.QueueEntry {
	return models.QueueEntry{
		ID:            id,
		TableName:     table,
		RecordID:      recordID,
		Action:        action,
		Payload:       payload,
		ClientVersion: version,
		CreatedAt:     createdAt,
	}
}

// ── Consolidate ──────────────────────────────────────────────────────────────

func TestConsolidate_Empty(t *testing.T) {
	assert.Nil(t, Consolidate(nil))
	assert.Nil(t, Consolidate([]models.QueueEntry{}))
}

func TestConsolidate_SingleEntryPassthrough(t *testing.T) {
	in := []models.QueueEntry{
		entry("q1", models.TableAnimals, "a1", models.ActionCreate, map[string]any{"crotal": "ES-001"}, 1, 100),
	}

	out := Consolidate(in)
	require.Len(t, out, 1)
	assert.Equal(t, models.ActionCreate, out[0].Action)
	assert.Equal(t, "a1", out[0].RecordID)
	assert.Equal(t, map[string]any{"crotal": "ES-001"}, out[0].Payload)
	assert.Equal(t, []string{"q1"}, out[0].SourceEntryIDs)
}

func TestConsolidate_CreateThenUpdate_FoldsIntoCreate(t *testing.T) {
	in := []models.QueueEntry{
		entry("q1", models.TableAnimals, "a1", models.ActionCreate, map[string]any{"crotal": "ES-001", "species": "ovine"}, 1, 100),
		entry("q2", models.TableAnimals, "a1", models.ActionUpdate, map[string]any{"crotal": "ES-002"}, 2, 200),
	}

	out := Consolidate(in)
	require.Len(t, out, 1)
	assert.Equal(t, models.ActionCreate, out[0].Action)
	assert.Equal(t, map[string]any{"crotal": "ES-002", "species": "ovine"}, out[0].Payload)
	assert.Equal(t, int64(2), out[0].ClientVersion)
	assert.Equal(t, []string{"q1", "q2"}, out[0].SourceEntryIDs)
	assert.Equal(t, int64(100), out[0].CreatedAt, "keeps the first entry's timestamp")
}

func TestConsolidate_UpdateThenUpdate_MergesShallowly(t *testing.T) {
	in := []models.QueueEntry{
		entry("q1", models.TableAnimals, "a1", models.ActionUpdate, map[string]any{"crotal": "ES-001", "species": "ovine"}, 2, 100),
		entry("q2", models.TableAnimals, "a1", models.ActionUpdate, map[string]any{"crotal": "ES-009"}, 3, 200),
	}

	out := Consolidate(in)
	require.Len(t, out, 1)
	assert.Equal(t, models.ActionUpdate, out[0].Action)
	// la clave repetida gana la entrada más reciente, el resto se conserva
	assert.Equal(t, map[string]any{"crotal": "ES-009", "species": "ovine"}, out[0].Payload)
	assert.Equal(t, int64(3), out[0].ClientVersion)
}

func TestConsolidate_CreateThenDelete_CancelsOut(t *testing.T) {
	in := []models.QueueEntry{
		entry("q1", models.TableAnimals, "a1", models.ActionCreate, map[string]any{"crotal": "ES-001"}, 1, 100),
		entry("q2", models.TableAnimals, "a2", models.ActionCreate, map[string]any{"crotal": "ES-002"}, 1, 150),
		entry("q3", models.TableAnimals, "a1", models.ActionDelete, nil, 2, 200),
	}

	out := Consolidate(in)
	require.Len(t, out, 1, "the created-then-deleted record disappears entirely")
	assert.Equal(t, "a2", out[0].RecordID)
}

func TestConsolidate_UpdateThenDelete_BecomesDelete(t *testing.T) {
	in := []models.QueueEntry{
		entry("q1", models.TableBreedings, "b1", models.ActionUpdate, map[string]any{"notes": "x"}, 2, 100),
		entry("q2", models.TableBreedings, "b1", models.ActionDelete, nil, 3, 200),
	}

	out := Consolidate(in)
	require.Len(t, out, 1)
	assert.Equal(t, models.ActionDelete, out[0].Action)
	assert.Nil(t, out[0].Payload)
	assert.Equal(t, []string{"q1", "q2"}, out[0].SourceEntryIDs)
}

func TestConsolidate_DeleteThenCreate_BecomesUpdate(t *testing.T) {
	// El registro sigue existiendo en el servidor: borrar y recrear en
	// local equivale a una actualización.
	in := []models.QueueEntry{
		entry("q1", models.TableAnimals, "a1", models.ActionDelete, nil, 3, 100),
		entry("q2", models.TableAnimals, "a1", models.ActionCreate, map[string]any{"crotal": "ES-777"}, 4, 200),
	}

	out := Consolidate(in)
	require.Len(t, out, 1)
	assert.Equal(t, models.ActionUpdate, out[0].Action)
	assert.Equal(t, map[string]any{"crotal": "ES-777"}, out[0].Payload)
	assert.Equal(t, int64(4), out[0].ClientVersion)
}

func TestConsolidate_UnsortedInput(t *testing.T) {
	in := []models.QueueEntry{
		entry("q2", models.TableAnimals, "a1", models.ActionUpdate, map[string]any{"crotal": "ES-002"}, 2, 200),
		entry("q1", models.TableAnimals, "a1", models.ActionCreate, map[string]any{"crotal": "ES-001"}, 1, 100),
	}

	out := Consolidate(in)
	require.Len(t, out, 1)
	assert.Equal(t, models.ActionCreate, out[0].Action)
	assert.Equal(t, map[string]any{"crotal": "ES-002"}, out[0].Payload)
	assert.Equal(t, []string{"q1", "q2"}, out[0].SourceEntryIDs)
}

func TestConsolidate_OrderedByFirstTimestampAcrossRecords(t *testing.T) {
	in := []models.QueueEntry{
		entry("q1", models.TableHealthRecords, "h1", models.ActionCreate, map[string]any{"type": "vaccine"}, 1, 300),
		entry("q2", models.TableAnimals, "a1", models.ActionCreate, map[string]any{"crotal": "ES-001"}, 1, 100),
		entry("q3", models.TableAnimals, "a1", models.ActionUpdate, map[string]any{"species": "ovine"}, 2, 400),
	}

	out := Consolidate(in)
	require.Len(t, out, 2)
	assert.Equal(t, "a1", out[0].RecordID, "a1's first entry predates h1's")
	assert.Equal(t, "h1", out[1].RecordID)
}

func TestConsolidate_Idempotent(t *testing.T) {
	in := []models.QueueEntry{
		entry("q1", models.TableAnimals, "a1", models.ActionCreate, map[string]any{"crotal": "ES-001"}, 1, 100),
		entry("q2", models.TableAnimals, "a1", models.ActionUpdate, map[string]any{"species": "caprine"}, 2, 200),
		entry("q3", models.TableBreedings, "b1", models.ActionDelete, nil, 5, 300),
	}

	once := Consolidate(in)

	// Re-queue the compacted output as raw rows, the way the store does,
	// and compact again.
	requeued := make([]models.QueueEntry, 0, len(once))
	for i, c := range once {
		requeued = append(requeued, entry(
			"r"+string(rune('0'+i)), c.TableName, c.RecordID, c.Action, c.Payload, c.ClientVersion, c.CreatedAt,
		))
	}
	twice := Consolidate(requeued)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i].TableName, twice[i].TableName)
		assert.Equal(t, once[i].RecordID, twice[i].RecordID)
		assert.Equal(t, once[i].Action, twice[i].Action)
		assert.Equal(t, once[i].Payload, twice[i].Payload)
		assert.Equal(t, once[i].ClientVersion, twice[i].ClientVersion)
	}
}

func TestConsolidate_DoesNotMutateInput(t *testing.T) {
	payload := map[string]any{"crotal": "ES-001"}
	in := []models.QueueEntry{
		entry("q1", models.TableAnimals, "a1", models.ActionCreate, payload, 1, 100),
		entry("q2", models.TableAnimals, "a1", models.ActionUpdate, map[string]any{"crotal": "ES-002"}, 2, 200),
	}

	_ = Consolidate(in)
	assert.Equal(t, map[string]any{"crotal": "ES-001"}, payload, "input payloads stay untouched")
	assert.Equal(t, "q1", in[0].ID, "input order stays untouched")
}
