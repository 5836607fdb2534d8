//go:build raylib

package main

import _ "github.com/vovakirdan/spider-dash/internal/platform/raylib"
