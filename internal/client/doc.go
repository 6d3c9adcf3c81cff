// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the diadoc-samples command runtime.
//
// It turns the merged configuration into the API client, the signer and the
// submission journal, and runs one command per process: sending the sample
// UTD, parsing addresses, listing the journal or serving the sandbox.
package client
