package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/meshing"
	"github.com/annel0/voxel-engine/internal/observability"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $VOXEL_CONFIG)")
	meshOut := flag.String("mesh-out", "", "куда записать итоговую поверхность в OBJ (.zst - со сжатием)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализируем систему логирования
	level := logging.ParseLevel(cfg.Logging.Level)
	if err := logging.InitDefaultLoggerIn("sandbox", cfg.Logging.Dir, level); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	manager := logging.GetLoggerManager()
	manager.SetDirectory(cfg.Logging.Dir)
	defer manager.CloseAll()
	worldLogger := manager.MustGetLogger("world")
	worldLogger.SetLevel(level)

	logging.Info("🎮 Запуск песочницы: мир %d³, генератор %s, сид %d", cfg.World.Size, cfg.World.Generator, cfg.World.Seed)

	ctx := context.Background()
	shutdownTelemetry, err := observability.InitTelemetry(ctx, cfg.Telemetry.Enabled, cfg.Telemetry.Service)
	if err != nil {
		logging.Error("❌ Ошибка инициализации OpenTelemetry: %v", err)
		shutdownTelemetry = func(context.Context) error { return nil }
	}
	defer func() {
		if err := shutdownTelemetry(ctx); err != nil {
			logging.Warn("Ошибка остановки OpenTelemetry: %v", err)
		}
	}()

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := world.NewMetrics(registry)

	var metricsServer *http.Server
	if addr := cfg.Metrics.GetMetricsAddr(); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{Addr: addr, Handler: mux}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("❌ Ошибка сервера метрик: %v", err)
			}
		}()
		logging.Info("📊 Метрики доступны на http://%s/metrics", addr)
	}

	stats := observability.NewProcessStats()

	sandbox, err := NewSandbox(ctx, cfg, metrics, worldLogger)
	if err != nil {
		logging.Error("❌ Ошибка создания мира: %v", err)
		os.Exit(1)
	}
	logging.Info("✅ Мир создан: прокси=%d, граней=%d", sandbox.Grid().ProxyCount(), sandbox.Grid().Mesh().FaceCount())

	var names []string
	for _, p := range sandbox.Hotbar() {
		if d, ok := sandbox.catalog.Lookup(p.BlockID()); ok {
			names = append(names, d.Name)
		}
	}
	logging.Debug("Панель блоков: %s", strings.Join(names, ", "))

	report := sandbox.Run(ctx, cfg.Sandbox.GetTicks())
	attaches, detaches := sandbox.Scene().Stats()

	logging.Info("🏁 Прогон завершён: тиков=%d (на земле %d), правок=%d (применено %d)",
		report.Ticks, report.GroundedTicks, report.Edits, report.AppliedEdits)
	logging.Info("   Прокси=%d, граней=%d, подключений=%d, отключений=%d",
		report.Proxies, report.Faces, attaches, detaches)
	logging.Info("   Аватар в %.2f, %.2f, %.2f", report.Position.X(), report.Position.Y(), report.Position.Z())

	logging.Info("   Время работы %v, куча %.1f MB", stats.Uptime().Round(time.Millisecond), stats.HeapMB())
	if rss, err := stats.RSSMB(); err == nil {
		logging.Info("   RSS %.1f MB", rss)
	}
	if cpu, err := stats.CPUPercent(); err == nil {
		logging.Info("   CPU %.1f%%", cpu)
	}

	if *meshOut != "" {
		if err := writeMesh(*meshOut, sandbox.Grid().Mesh()); err != nil {
			logging.Error("❌ Ошибка записи поверхности: %v", err)
		} else {
			logging.Info("💾 Поверхность записана в %s", *meshOut)
		}
	}

	if metricsServer == nil {
		return
	}

	// Сервер метрик работает до сигнала завершения
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки сервера метрик: %v", err)
	}
}

// writeMesh записывает поверхность в файл, сжимая её для имён с суффиксом .zst
func writeMesh(path string, mesh *meshing.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	write := meshing.WriteOBJ
	if strings.HasSuffix(path, ".zst") {
		write = meshing.WriteCompressedOBJ
	}
	if err := write(f, mesh); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
