package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	goPassword "github.com/MrEthical07/goPassword"
	"github.com/MrEthical07/goPassword/hash"
	"github.com/MrEthical07/goPassword/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type candidate struct {
	label  string
	hasher hash.Hasher
}

type measurement struct {
	label      string
	hashTime   time.Duration
	verifyTime time.Duration
	inWindow   bool
}

func main() {
	var (
		algorithm = flag.String("algorithm", "all", "algorithm to tune: argon2id, bcrypt, scrypt, pbkdf2-sha256, or all")
		targetMin = flag.Duration("target-min", 100*time.Millisecond, "lower bound of the acceptable hash time window")
		targetMax = flag.Duration("target-max", 500*time.Millisecond, "upper bound of the acceptable hash time window")
		samples   = flag.Int("samples", 3, "samples per cost step")
		seed      = flag.Int("seed", 0, "credentials to seed into redis using the tuned preferred algorithm")
		redisAddr = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix    = flag.String("prefix", "cred", "credential key prefix")
	)
	flag.Parse()

	if *samples <= 0 {
		fmt.Fprintln(os.Stderr, "samples must be > 0")
		os.Exit(2)
	}
	if *targetMin <= 0 || *targetMax <= *targetMin {
		fmt.Fprintln(os.Stderr, "target window must satisfy 0 < target-min < target-max")
		os.Exit(2)
	}

	algorithms := []string{"argon2id", "bcrypt", "scrypt", "pbkdf2-sha256"}
	if *algorithm != "all" {
		found := false
		for _, a := range algorithms {
			if a == *algorithm {
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "unknown algorithm %q\n", *algorithm)
			os.Exit(2)
		}
		algorithms = []string{*algorithm}
	}

	fmt.Printf("target window: %s .. %s (%d samples per step)\n", *targetMin, *targetMax, *samples)

	results := make(map[string]measurement, len(algorithms))
	for _, a := range algorithms {
		m, err := tuneAlgorithm(a, *targetMin, *targetMax, *samples)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tune %s failed: %v\n", a, err)
			os.Exit(1)
		}
		results[a] = m
	}

	fmt.Println("---- results ----")
	for _, a := range algorithms {
		m := results[a]
		marker := ""
		if !m.inWindow {
			marker = " (outside target window)"
		}
		fmt.Printf("%-14s %-34s hash=%s verify=%s%s\n",
			a,
			m.label,
			m.hashTime.Round(time.Millisecond),
			m.verifyTime.Round(time.Millisecond),
			marker,
		)
	}

	if *seed > 0 {
		if err := seedCredentials(*seed, *redisAddr, *prefix); err != nil {
			fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
			os.Exit(1)
		}
	}
}

// tuneAlgorithm walks the dominant cost parameter upward until the mean
// hash time lands in the target window, reporting the last step either way.
func tuneAlgorithm(algorithm string, targetMin, targetMax time.Duration, samples int) (measurement, error) {
	var last measurement
	for _, c := range candidates(algorithm) {
		m, err := measure(c, samples)
		if err != nil {
			return measurement{}, err
		}
		last = m
		fmt.Printf("  %-14s %-34s hash=%s\n", algorithm, c.label, m.hashTime.Round(time.Millisecond))
		if m.hashTime >= targetMin && m.hashTime <= targetMax {
			last.inWindow = true
			return last, nil
		}
		if m.hashTime > targetMax {
			return last, nil
		}
	}
	return last, nil
}

func candidates(algorithm string) []candidate {
	var out []candidate
	switch algorithm {
	case "argon2id":
		for memoryKB := uint32(16 * 1024); memoryKB <= 1024*1024; memoryKB *= 2 {
			params := hash.DefaultArgon2Params()
			params.Memory = memoryKB
			h, err := hash.NewArgon2(params)
			if err != nil {
				continue
			}
			out = append(out, candidate{
				label:  fmt.Sprintf("m=%dKB,t=%d,p=%d", params.Memory, params.Time, params.Parallelism),
				hasher: h,
			})
		}
	case "bcrypt":
		for cost := 8; cost <= 16; cost++ {
			h, err := hash.NewBcrypt(hash.BcryptParams{Cost: cost})
			if err != nil {
				continue
			}
			out = append(out, candidate{label: fmt.Sprintf("cost=%d", cost), hasher: h})
		}
	case "scrypt":
		for logN := 12; logN <= 22; logN++ {
			params := hash.DefaultScryptParams()
			params.LogN = logN
			h, err := hash.NewScrypt(params)
			if err != nil {
				continue
			}
			out = append(out, candidate{
				label:  fmt.Sprintf("ln=%d,r=%d,p=%d", params.LogN, params.R, params.P),
				hasher: h,
			})
		}
	case "pbkdf2-sha256":
		for iterations := 100_000; iterations <= 6_400_000; iterations *= 2 {
			params := hash.DefaultPBKDF2Params()
			params.Iterations = iterations
			h, err := hash.NewPBKDF2(params)
			if err != nil {
				continue
			}
			out = append(out, candidate{label: fmt.Sprintf("i=%d", params.Iterations), hasher: h})
		}
	}
	return out
}

func measure(c candidate, samples int) (measurement, error) {
	const plaintext = "tuning-probe-password"

	var payload string
	var hashTotal time.Duration
	for i := 0; i < samples; i++ {
		t0 := time.Now()
		p, err := c.hasher.Hash(plaintext)
		hashTotal += time.Since(t0)
		if err != nil {
			return measurement{}, fmt.Errorf("hash %s: %w", c.label, err)
		}
		payload = p
	}

	var verifyTotal time.Duration
	for i := 0; i < samples; i++ {
		t0 := time.Now()
		ok, err := c.hasher.Verify(plaintext, payload)
		verifyTotal += time.Since(t0)
		if err != nil {
			return measurement{}, fmt.Errorf("verify %s: %w", c.label, err)
		}
		if !ok {
			return measurement{}, fmt.Errorf("verify %s: fresh hash did not match", c.label)
		}
	}

	return measurement{
		label:      c.label,
		hashTime:   hashTotal / time.Duration(samples),
		verifyTime: verifyTotal / time.Duration(samples),
	}, nil
}

func seedCredentials(count int, redisAddr, prefix string) error {
	ctx := context.Background()

	addr := redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  redis.UniversalClient
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return fmt.Errorf("start miniredis: %w", err)
		}
		addr = mr.Addr()
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	encoder, err := goPassword.New().
		WithDefaultHashers().
		WithPreferred(goPassword.AlgorithmArgon2).
		Build()
	if err != nil {
		return fmt.Errorf("build encoder: %w", err)
	}
	defer encoder.Close()

	credStore := store.NewRedisStore(client, prefix)

	fmt.Printf("seeding %d credentials...\n", count)
	startSeed := time.Now()
	for i := 0; i < count; i++ {
		identity := uuid.NewString()
		password := "pw-" + strings.ReplaceAll(identity, "-", "")
		encoded, err := encoder.Encode(ctx, password)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if err := credStore.Save(ctx, identity, encoded); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	elapsed := time.Since(startSeed)
	fmt.Printf("seeded in %s (%.0f credentials/sec)\n",
		elapsed.Round(time.Millisecond),
		float64(count)/elapsed.Seconds(),
	)
	return nil
}
