// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package endpoint opens the input and output of a pipeline run. The path "-"
// selects the standard streams of the process.
package endpoint
