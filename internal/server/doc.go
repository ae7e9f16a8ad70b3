// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the generator's HTTP and gRPC listeners side by side
// and stops both when the process receives SIGTERM, SIGINT or SIGQUIT.
package server
