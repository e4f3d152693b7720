// Package styledoc reads declarative style documents in YAML or TOML and
// turns them into gstyle.Style values.
//
// A document looks like:
//
//	width: 120
//	height: 40
//	background: "#ffffff"
//	border:
//	  width: 2
//	  radius: 8
//	  color: steelblue
//	layers:
//	  content:
//	    shadows:
//	      - name: drop
//	        color: "rgba(0, 0, 0, 0.4)"
//	        blur: 6
//	        spread: 2
//
// Colors accept the forms understood by gstyle.ParseColor. Enumerations use
// the lower-case hyphenated names printed by the gstyle String methods.
package styledoc
