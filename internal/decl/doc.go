// Package decl provides the YAML schema of enum declaration files, their
// parsing, normalization and structural validation.
//
// A declaration file describes one or more tagged unions. Each enum is
// turned into a Go package holding one struct per variant.
//
// # Schema Overview
//
//	version: "1"
//	options:
//	  package_path: example.com/game/events   # import path of output_dir
//	  runtime_import: enumevent-generator/event
//	  entity_type: event.Entity
//	  output_dir: ./events
//	enums:
//	  - name: GameEvent
//	    variants:
//	      - GameOver                      # unit variant
//	      - name: Victory
//	        fields: [string]              # positional variant
//	      - name: ScoreChanged
//	        fields:                       # named variant, order preserved
//	          team: uint32
//	          score:
//	            type: int32
//	            markers: [unwrap]
//	  - name: CombatEvent
//	    mode: entity                      # every variant targets an entity
//	    directives: [propagate]           # enum-level default
//	    variants:
//	      - name: Hit
//	        fields:
//	          entity: event.Entity        # implicit target
//	          damage: int
//	      - name: Attack
//	        directives: [auto_propagate, "propagate = event.ChildOf"]
//	        fields:
//	          attacker: {type: event.Entity, markers: [target]}
//	          entity: event.Entity
//
// # Directives
//
// Field markers: unwrap, target. Enum and variant directives: propagate
// (optionally "propagate = <Type>" or {propagate: <Type>}) and
// auto_propagate. A variant that declares any propagation directive
// replaces the enum-level pair entirely; nothing is merged.
package decl
