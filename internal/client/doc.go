// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joan Moliner

// Package client implements the headless client application runtime.
//
// It wires the local store, the remote sync adapter, and the background
// synchronization job into a single process lifecycle.
package client
