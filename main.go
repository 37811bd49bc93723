package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/makerdao/go-dss/common"
	"github.com/makerdao/go-dss/core"
	"github.com/makerdao/go-dss/database"
	"github.com/makerdao/go-dss/deployment"
	"github.com/makerdao/go-dss/logs"
)

var logger = logs.Logger("main")

func main() {
	app := &cli.App{
		Name:  "go-dss",
		Usage: "handles and tooling for a deployed Multi-Collateral Dai system",
		Commands: []*cli.Command{
			addressesCommand,
			dumpCommand,
			watchCommand,
			serveCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var networkFlag = &cli.StringFlag{
	Name:  "network",
	Usage: "address-book network (mainnet, kovan, testnet); empty resolves from the node",
}

var endpointFlag = &cli.StringFlag{
	Name:  "endpoint",
	Usage: "JSON-RPC endpoint of an Ethereum node",
	Value: "http://localhost:8545",
}

var dbFlag = &cli.StringFlag{
	Name:  "db",
	Usage: "sqlite database path",
	Value: "go-dss.db",
}

var addressesCommand = &cli.Command{
	Name:  "addresses",
	Usage: "print the embedded address book for a network",
	Flags: []cli.Flag{networkFlag},
	Action: func(c *cli.Context) error {
		network := c.String("network")
		if network == "" {
			network = "mainnet"
		}
		book, err := common.Book(network)
		if err != nil {
			return err
		}
		raw, err := book.ToJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
		return nil
	},
}

var dumpCommand = &cli.Command{
	Name:  "dump",
	Usage: "write a network's address book to a file",
	Flags: []cli.Flag{
		networkFlag,
		&cli.StringFlag{Name: "out", Usage: "output path", Required: true},
	},
	Action: func(c *cli.Context) error {
		network := c.String("network")
		if network == "" {
			network = "mainnet"
		}
		book, err := common.Book(network)
		if err != nil {
			return err
		}
		return book.DumpFile(c.String("out"))
	},
}

var watchCommand = &cli.Command{
	Name:  "watch",
	Usage: "mirror the auction houses into the local database",
	Flags: []cli.Flag{networkFlag, endpointFlag, dbFlag},
	Action: func(c *cli.Context) error {
		ctx := interruptContext()

		d, client, err := connect(ctx, c)
		if err != nil {
			return err
		}
		defer client.Close()

		watcher, err := core.NewWatcher(client, d)
		if err != nil {
			return err
		}
		logger.Infof("watching %d auction houses on %s", len(d.AuctionAddresses()), d.Network)
		watcher.Watch(ctx)
		return nil
	},
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "run the watcher and serve the HTTP API",
	Flags: []cli.Flag{
		networkFlag, endpointFlag, dbFlag,
		&cli.StringFlag{Name: "listen", Usage: "HTTP listen address", Value: ":8080"},
	},
	Action: func(c *cli.Context) error {
		ctx := interruptContext()

		d, client, err := connect(ctx, c)
		if err != nil {
			return err
		}
		defer client.Close()

		watcher, err := core.NewWatcher(client, d)
		if err != nil {
			return err
		}
		go watcher.Watch(ctx)

		router := core.NewRouter(d)
		logger.Infof("serving %s deployment on %s", d.Network, c.String("listen"))
		return router.Run(c.String("listen"))
	},
}

// connect opens the database, dials the node and builds the deployment,
// recording the address book it resolved.
func connect(ctx context.Context, c *cli.Context) (*deployment.Deployment, *ethclient.Client, error) {
	if err := database.InitDatabase(c.String("db")); err != nil {
		return nil, nil, err
	}

	client, err := ethclient.DialContext(ctx, c.String("endpoint"))
	if err != nil {
		return nil, nil, xerrors.Errorf("dial %s: %w", c.String("endpoint"), err)
	}

	var d *deployment.Deployment
	if network := c.String("network"); network != "" {
		d, err = deployment.FromNetwork(client, network)
	} else {
		d, err = deployment.FromNode(ctx, client)
	}
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	raw, err := d.ToJSON()
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	record := database.DeploymentRecord{Network: d.Network, Addresses: string(raw)}
	if err := record.SaveDeploymentRecord(); err != nil {
		logger.Error(err.Error())
	}

	return d, client, nil
}

func interruptContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		cancel()
	}()
	return ctx
}
