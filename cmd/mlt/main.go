// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package main

import (
	"context"
	"log"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/maplibre/mlt-go"
	"github.com/maplibre/mlt-go/config"
	_ "github.com/maplibre/mlt-go/io/gocloud"
)

const usage = `mlt.

Usage:
  mlt layers [options] TILE...
  mlt schema [options] TILE [--layer NAME]
  mlt features [options] TILE [--layer NAME] [--limit N] [--properties LIST]
  mlt geometry [options] TILE FEATURE [--layer NAME]
  mlt mbtiles [options] ARCHIVE [TILE_ID]
  mlt extract [options] ARCHIVE TILE_ID LOCATION
  mlt -h | --help | --version

Commands:
  layers      List the feature tables of one or more tiles.
  schema      Show the Arrow schema of each feature table.
  features    List the features of a tile.
  geometry    Show the geometry of a single feature.
  mbtiles     Describe an MBTiles archive, or the layers of one of its tiles.
  extract     Copy a tile out of an MBTiles archive to a location.

Arguments:
  TILE        tile location, a path or a URL such as s3://bucket/14/8529/5975.mlt
              or mbtiles:///data/planet.mbtiles#14/8529/5975
  FEATURE     index of the feature within its layer
  ARCHIVE     location of an MBTiles archive, a path or a URL
  TILE_ID     tile address as Z/X/Y
  LOCATION    destination of the extracted tile, may be a tile of another archive

Options:
  -h --help           show this help messages and exit
  --metadata PATH     location of the tileset metadata (YAML or JSON), or an
                      mbtiles: archive location to use the archive's tileset
  --output TYPE       output type (json/text)
  --config PATH       specify the path to the configuration file
  --source NAME       configured source to take defaults from
  --layer NAME        only show the named feature table
  --limit N           maximum number of features per layer, 0 for all
  --properties LIST   comma separated property columns to decode`

type Config struct {
	Layers   bool `docopt:"layers"`
	Schema   bool `docopt:"schema"`
	Features bool `docopt:"features"`
	Geometry bool `docopt:"geometry"`
	MBTiles  bool `docopt:"mbtiles"`
	Extract  bool `docopt:"extract"`

	Tiles    []string `docopt:"TILE"`
	Feature  string   `docopt:"FEATURE"`
	Archive  string   `docopt:"ARCHIVE"`
	TileID   string   `docopt:"TILE_ID"`
	Location string   `docopt:"LOCATION"`

	Metadata   string `docopt:"--metadata"`
	Output     string `docopt:"--output"`
	Config     string `docopt:"--config"`
	Source     string `docopt:"--source"`
	Layer      string `docopt:"--layer"`
	Limit      string `docopt:"--limit"`
	Properties string `docopt:"--properties"`
}

func main() {
	ctx := context.Background()
	args, err := docopt.ParseArgs(usage, os.Args[1:], mlt.Version())
	if err != nil {
		log.Fatal(err)
	}

	cfg := Config{}
	if err := args.Bind(&cfg); err != nil {
		log.Fatal(err)
	}

	c := &cli{cfg: cfg, maxWorkers: config.EnvConfig.MaxWorkers}

	source := cfg.Source
	if source == "" {
		source = config.EnvConfig.DefaultSource
	}
	if fileCfg := config.ParseConfig(config.LoadConfig(cfg.Config), source); fileCfg != nil {
		c.mergeConf(fileCfg)
	}

	c.out, err = newOutput(c.cfg.Output, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	if err := c.run(ctx); err != nil {
		c.out.Error(err)
		os.Exit(1)
	}
}
