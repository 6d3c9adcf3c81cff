// Package config assembles the configuration of the Diadoc samples from three
// sources: environment variables (caarlos0/env), command-line flags and an
// optional JSON file. The sources are merged with dario.cat/mergo in that
// order of precedence, then built-in defaults fill whatever is still empty.
package config
