package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/code-alexander/algobase/algod"
	"github.com/code-alexander/algobase/algorand"
	"github.com/code-alexander/algobase/arc19"
	"github.com/code-alexander/algobase/arc3"
	"github.com/code-alexander/algobase/asa"
	"github.com/code-alexander/algobase/config"
	"github.com/code-alexander/algobase/dispenser"
	"github.com/code-alexander/algobase/internal/logger"
	"github.com/code-alexander/algobase/ipfs"
	"github.com/code-alexander/algobase/refdata"
)

var (
	configFile   = flag.String("config", "", "Path to configuration file")
	envPath      = flag.String("env", ".", "Path to environment files")
	metadataFile = flag.String("metadata", "", "Path to an ARC-3 metadata JSON file")
	assetID      = flag.Uint64("asset-id", 0, "Fetch asset parameters from algod by ID")
	cidFlag      = flag.String("cid", "", "Convert an IPFS CID to a reserve address and exit")
	declaredType = flag.String("type", "", "Declared asset type (fungible, non_fungible_pure, non_fungible_fractional)")
	arc19Flag    = flag.Bool("arc19", false, "Validate the metadata against the template-URL standard")
	pinFlag      = flag.Bool("pin", false, "Pin the metadata to nft.storage and print the CID and reserve address")
	fundAddress  = flag.String("fund", "", "Fund an address from the testnet dispenser and exit")
	fundAmount   = flag.Uint64("amount", 1_000_000, "Funding amount in microalgos")

	total     = flag.Uint64("total", 1, "Total number of asset units")
	decimals  = flag.Uint("decimals", 0, "Number of decimal places")
	unitName  = flag.String("unit-name", "", "Asset unit name")
	assetName = flag.String("name", "", "Asset name")
	assetURL  = flag.String("url", "", "Asset URL")
	reserve   = flag.String("reserve", "", "Reserve address")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "asameta",
		},
	}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if *cidFlag != "" {
		address, err := algorand.CIDToAddress(*cidFlag)
		if err != nil {
			logger.Fatal("Failed to convert CID", zap.Error(err), zap.String("cid", *cidFlag))
		}
		fmt.Printf("Reserve address: %s\n", address)
		return
	}

	ctx := context.Background()

	if *fundAddress != "" {
		if err := fund(ctx, cfg, *fundAddress, *fundAmount); err != nil {
			logger.Fatal("Failed to fund address", zap.Error(err), zap.String("address", *fundAddress))
		}
		return
	}

	params, err := resolveParams(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to resolve asset parameters", zap.Error(err))
	}

	opts := []asa.Option{}
	if len(cfg.IPFSGateways) > 0 {
		opts = append(opts, asa.WithProvider(refdata.New(cfg.IPFSGateways)))
	}
	if *declaredType != "" {
		opts = append(opts, asa.WithDeclaredType(asa.AsaType(*declaredType)))
	}

	if *metadataFile != "" {
		doc, err := loadMetadata(*metadataFile)
		if err != nil {
			logger.Fatal("Failed to load metadata", zap.Error(err), zap.String("path", *metadataFile))
		}
		if *arc19Flag {
			opts = append(opts, asa.WithARC19Metadata(&arc19.Metadata{ARC3: doc}))
		} else {
			opts = append(opts, asa.WithARC3Metadata(doc))
		}
	}

	asset, warnings, err := asa.New(params, opts...)
	if err != nil {
		logger.Fatal("Asset validation failed", zap.Error(err))
	}

	fmt.Printf("Derived type: %s\n", asset.DerivedType())
	if hash := asset.MetadataHash(); hash != nil {
		fmt.Printf("Metadata hash: %s\n", base64.StdEncoding.EncodeToString(hash))
	}
	for _, w := range warnings {
		fmt.Printf("Warning [%s]: %s\n", w.Code, w.Message)
	}

	if *pinFlag {
		if err := pin(ctx, cfg, asset); err != nil {
			logger.Fatal("Failed to pin metadata", zap.Error(err))
		}
	}
}

// pin stores the asset's canonical metadata document on nft.storage and
// prints the resulting CID and the reserve address it encodes.
func pin(ctx context.Context, cfg *config.Settings, asset *asa.Asa) error {
	doc := asset.ARC3Metadata()
	if doc == nil {
		return errors.New("no metadata document to pin")
	}

	canonical, err := doc.CanonicalJSON()
	if err != nil {
		return err
	}

	client, err := ipfs.NewClient(cfg.NFTStorageAPIKey)
	if err != nil {
		return err
	}

	cid, err := client.StoreJSON(ctx, canonical)
	if err != nil {
		return err
	}

	status, err := client.FetchPinStatus(ctx, cid)
	if err != nil {
		return err
	}

	address, err := algorand.CIDToAddress(cid)
	if err != nil {
		return err
	}

	fmt.Printf("CID: %s\n", cid)
	fmt.Printf("Pin status: %s\n", status)
	fmt.Printf("Reserve address: %s\n", address)
	return nil
}

// fund requests microalgos for an address from the testnet dispenser.
func fund(ctx context.Context, cfg *config.Settings, address string, amount uint64) error {
	if !algorand.IsValidAddress(address) {
		return fmt.Errorf("invalid receiver address %q", address)
	}

	client, err := dispenser.NewClient(cfg.DispenserAccessToken)
	if err != nil {
		return err
	}

	resp, err := client.Fund(ctx, address, amount)
	if err != nil {
		return err
	}

	fmt.Printf("Funded %d microalgos, transaction %s\n", resp.Amount, resp.TxID)
	return nil
}

// resolveParams builds asset parameters from algod (when an asset ID is
// given) or from the command-line flags.
func resolveParams(ctx context.Context, cfg *config.Settings) (asa.AssetParams, error) {
	if *assetID != 0 {
		baseURL, err := algod.ProviderURL(cfg.Provider, cfg.Network, cfg.AlgodURL)
		if err != nil {
			return asa.AssetParams{}, err
		}
		client := algod.NewClient(baseURL, cfg.AlgodToken)
		logger.Info("Fetching asset from algod", zap.Uint64("asset_id", *assetID), zap.String("url", baseURL))
		return client.AssetParams(ctx, *assetID)
	}

	params := asa.AssetParams{
		Total:     *total,
		Decimals:  uint32(*decimals),
		UnitName:  optional(*unitName),
		AssetName: optional(*assetName),
		URL:       optional(*assetURL),
		Reserve:   optional(*reserve),
	}
	return params, nil
}

func loadMetadata(path string) (*arc3.Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var doc arc3.Metadata
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse metadata file: %w", err)
	}
	return &doc, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
