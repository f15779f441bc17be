// Package scan evaluates every strategy template against every
// expiration of a symbol and ranks the results.
package scan

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"optionviz/models"
	"optionviz/probability"
	"optionviz/strategy"
	"optionviz/tradier"
)

// scanVolatility is the annualized volatility assumed by the
// model-based profit probability, matching the premium estimator's
// constant.
const scanVolatility = 0.25

type job struct {
	template         string
	expiration       string
	daysToExpiration float64
	strike           float64
	strike2          float64
	premium          float64
	premium2         float64
}

// Result is one evaluated template/expiration pair.
type Result struct {
	Symbol           string               `json:"symbol"`
	Template         string               `json:"template"`
	Expiration       string               `json:"expiration"`
	DaysToExpiration float64              `json:"daysToExpiration"`
	Strategy         models.Strategy      `json:"strategy"`
	Stats            models.StrategyStats `json:"stats"`
	ModelProbability float64              `json:"modelProbability"`
}

// Run fetches the symbol's expirations and chains, evaluates every
// template at the at-the-money strikes of each expiration, and returns
// the results sorted by model profit probability, best first.
func Run(client *tradier.Client, symbol string, log zerolog.Logger) ([]Result, error) {
	expirations, err := client.GetExpirations(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expirations for %s: %w", symbol, err)
	}
	if len(expirations) == 0 {
		return nil, fmt.Errorf("no expirations available for %s", symbol)
	}

	spot, err := client.GetUnderlyingPrice(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch underlying price for %s: %w", symbol, err)
	}
	log.Info().Str("symbol", symbol).Float64("spot", spot).Int("expirations", len(expirations)).Msg("scanning templates")

	jobs, err := generateJobs(client, symbol, spot, expirations, log)
	if err != nil {
		return nil, err
	}

	numWorkers := runtime.NumCPU()

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(jobs)),
		mpb.PrependDecorators(
			decor.Name("Scanning"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)

	results := processJobs(jobs, symbol, spot, numWorkers, bar)
	p.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].ModelProbability > results[j].ModelProbability
	})
	return results, nil
}

// generateJobs builds one job per template per expiration, using the
// strike closest to spot (and the next one above for spreads) with mid
// quotes as premiums. Expirations without at least two strikes around
// the spot are skipped.
func generateJobs(client *tradier.Client, symbol string, spot float64, expirations []tradier.Expiration, log zerolog.Logger) ([]job, error) {
	var jobs []job
	now := time.Now()

	for _, exp := range expirations {
		atm, next, ok := tradier.ATMStrikes(exp.Strikes, spot)
		if !ok {
			continue
		}

		dte := time.Unix(exp.Timestamp, 0).Sub(now).Hours() / 24
		if dte <= 0 {
			continue
		}

		chain, err := client.GetChain(symbol, exp.Date)
		if err != nil {
			log.Warn().Err(err).Str("expiration", exp.Date).Msg("skipping expiration")
			continue
		}

		atmCallMid := tradier.MidPremium(chain.Calls, atm)
		atmPutMid := tradier.MidPremium(chain.Puts, atm)
		nextCallMid := tradier.MidPremium(chain.Calls, next)

		for _, template := range strategy.Templates {
			premium, premium2 := strategy.QuotePremiums(template, atmCallMid, atmPutMid, nextCallMid)
			jobs = append(jobs, job{
				template:         template,
				expiration:       exp.Date,
				daysToExpiration: dte,
				strike:           atm,
				strike2:          next,
				premium:          premium,
				premium2:         premium2,
			})
		}
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("no scannable expirations for %s", symbol)
	}
	return jobs, nil
}

func processJobs(jobs []job, symbol string, spot float64, numWorkers int, bar *mpb.Bar) []Result {
	var wg sync.WaitGroup
	jobChan := make(chan job, len(jobs))
	resultChan := make(chan Result, len(jobs))

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(jobChan, resultChan, &wg, symbol, spot, bar)
	}

	for _, j := range jobs {
		jobChan <- j
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var results []Result
	for r := range resultChan {
		results = append(results, r)
	}
	return results
}

func worker(jobs <-chan job, results chan<- Result, wg *sync.WaitGroup, symbol string, spot float64, bar *mpb.Bar) {
	defer wg.Done()
	for j := range jobs {
		built, err := strategy.Build(j.template, j.strike, j.strike2,
			spot, j.daysToExpiration, j.premium, j.premium2)
		if err == nil {
			curve := strategy.GenerateCurve(built, spot, strategy.DefaultPriceRange)
			results <- Result{
				Symbol:           symbol,
				Template:         j.template,
				Expiration:       j.expiration,
				DaysToExpiration: j.daysToExpiration,
				Strategy:         built,
				Stats:            strategy.ExtractStats(curve),
				ModelProbability: probability.LogNormalProfitProbability(built, spot, scanVolatility, j.daysToExpiration),
			}
		}
		bar.Increment()
	}
}
