// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the coach-notes
// server.
//
// Each subcommand maps to one [adapter.NotesClient] call; results are printed
// as indented JSON.
package client
