// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

/*
Package supervisor runs the dashboard server as a suture supervisor tree.

	entertainment-analysis (root)
	├── data-layer   dashboard reload
	└── api-layer    HTTP server

A failing service is restarted with backoff without taking the other layer
down: a broken reload never stops the API from serving the last good
dataset. Supervisor events are logged through sutureslog into zerolog.
*/
package supervisor
