// Package yamlcfg provides the YAML implementation of config.Loader.
//
// A YAML scenario holds a single `jobs` sequence:
//
//	jobs:
//	  - kind: square
//	    name: demo
//	    path: maps/demo.txt
//	  - kind: life
//	    name: blinker
//	    width: 5
//	    height: 5
//	    iterations: 1
//	    commands: sdxdd
package yamlcfg
