// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package applets provides the built-in tasks shipped with the msh
// demo shell: echo, status, quit, and exit. They double as reference
// implementations of the multish.Task interface.
package applets
