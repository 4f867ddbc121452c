package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"os"

	"tokenboard/core"
	"tokenboard/handler/param"

	"github.com/MakeNowJust/heredoc"
	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// filterFlags named after the query keys of /api/assets
var filterFlags = []struct {
	name  string
	usage string
}{
	{"platform", "platforms, comma separated"},
	{"assetType", "asset types, comma separated"},
	{"tokenStandard", "token standards, comma separated"},
	{"complianceStatus", "compliance statuses, comma separated"},
	{"blockchain", "blockchains, comma separated"},
	{"minPrice", "lower bound of current price"},
	{"maxPrice", "upper bound of current price"},
	{"minYield", "lower bound of yield"},
	{"maxYield", "upper bound of yield"},
	{"minInvestment", "lower bound of the minimum investment"},
	{"yieldRange", `yield bucket such as "5-10" or "20+"`},
	{"riskLevel", "low, medium or high"},
	{"liquidity", "low, medium or high"},
	{"regulatoryStatus", "regulatory status"},
	{"region", "region"},
	{"search", "text search over name, symbol, description and issuer"},
	{"page", "page number"},
	{"limit", "page size"},
}

var assetsCmd = &cobra.Command{
	Use:     "assets",
	Aliases: []string{"a"},
	Short:   "query the aggregated asset universe",
	Example: heredoc.Doc(`
		$tokenboard assets list --platform securitize,polymath --minYield 5
		$tokenboard assets search manhattan --assetType real-estate
		$tokenboard assets get {asset_id}
		$tokenboard assets platform polymath --minPrice 1000
		$tokenboard assets market-data {asset_id} --on securitize
		$tokenboard assets history {asset_id} --on securitize --limit 10
		$tokenboard assets stats
	`),
}

var listAssetsCmd = &cobra.Command{
	Use:   "list",
	Short: "list assets of every platform",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)
		filters := mustFilters(cmd)

		result, err := provideAggregator().GetAllAssets(ctx, filters)
		if err != nil {
			logger.FromContext(ctx).WithError(err).Fatalln("list assets")
		}

		printJSON(result)
	},
}

var searchAssetsCmd = &cobra.Command{
	Use:   "search {query}",
	Short: "search assets by text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)
		filters := mustFilters(cmd)

		result, err := provideAggregator().SearchAssets(ctx, args[0], filters)
		if err != nil {
			logger.FromContext(ctx).WithError(err).Fatalln("search assets")
		}

		printJSON(result)
	},
}

var getAssetCmd = &cobra.Command{
	Use:   "get {asset_id}",
	Short: "find one asset by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)

		asset, err := provideAggregator().GetAssetByID(ctx, args[0])
		if err != nil {
			logger.FromContext(ctx).WithError(err).Fatalln("get asset")
		}

		if asset == nil {
			logrus.Fatalf("asset %s not found", args[0])
		}

		printJSON(asset)
	},
}

var platformAssetsCmd = &cobra.Command{
	Use:   "platform {platform}",
	Short: "list assets of one platform",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)
		filters := mustFilters(cmd)

		result, err := provideAggregator().GetAssetsByPlatform(ctx, core.Platform(args[0]), filters)
		if err != nil {
			logger.FromContext(ctx).WithError(err).Fatalln("list platform assets")
		}

		printJSON(result)
	},
}

var marketDataCmd = &cobra.Command{
	Use:   "market-data {asset_id}",
	Short: "market data of one asset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)
		platform, _ := cmd.Flags().GetString("on")

		data, err := provideAggregator().GetMarketData(ctx, args[0], core.Platform(platform))
		if err != nil {
			logger.FromContext(ctx).WithError(err).Fatalln("get market data")
		}

		if data == nil {
			logrus.Fatalf("asset %s not found", args[0])
		}

		printJSON(data)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history {asset_id}",
	Short: "trading history of one asset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)
		platform, _ := cmd.Flags().GetString("on")

		var params core.HistoryParams
		params.StartDate, _ = cmd.Flags().GetString("start")
		params.EndDate, _ = cmd.Flags().GetString("end")
		params.Limit, _ = cmd.Flags().GetInt("limit")

		data, err := provideAggregator().GetTradingHistory(ctx, args[0], core.Platform(platform), params)
		if err != nil {
			logger.FromContext(ctx).WithError(err).Fatalln("get trading history")
		}

		if data == nil {
			logrus.Fatalf("asset %s not found", args[0])
		}

		printJSON(data)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "statistics over every platform",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := commandContext(cmd)

		stats, err := provideAggregator().GetPlatformStats(ctx)
		if err != nil {
			logger.FromContext(ctx).WithError(err).Fatalln("platform stats")
		}

		printJSON(stats)
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
	assetsCmd.AddCommand(listAssetsCmd, searchAssetsCmd, getAssetCmd, platformAssetsCmd, marketDataCmd, historyCmd, statsCmd)

	for _, cmd := range []*cobra.Command{listAssetsCmd, searchAssetsCmd, platformAssetsCmd} {
		for _, f := range filterFlags {
			cmd.Flags().String(f.name, "", f.usage)
		}
	}

	for _, cmd := range []*cobra.Command{marketDataCmd, historyCmd} {
		cmd.Flags().String("on", "", "platform of the asset, located by id when empty")
	}

	historyCmd.Flags().String("start", "", "start date")
	historyCmd.Flags().String("end", "", "end date")
	historyCmd.Flags().Int("limit", 0, "max records")
}

func commandContext(cmd *cobra.Command) context.Context {
	log := logrus.WithField("cmd", cmd.CommandPath())
	return logger.WithContext(cmd.Context(), log)
}

func provideAggregator() core.IAggregatorService {
	return provideAggregatorService(provideAdapters(provideSecuritizeService()))
}

// mustFilters decode the filter flags the way /api/assets decodes its query
func mustFilters(cmd *cobra.Command) *core.AssetFilters {
	values := url.Values{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		values.Set(f.Name, f.Value.String())
	})

	var filters core.AssetFilters
	if err := param.Query(values, &filters); err != nil {
		logrus.WithError(err).Fatalln("invalid filter flags")
	}

	return &filters
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil && !errors.Is(err, os.ErrClosed) {
		logrus.WithError(err).Errorln("print json")
	}
}
