package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profitability-api/infrastructure/database/postgres"
	"github.com/vfg2006/profitability-api/infrastructure/repository"
	"github.com/vfg2006/profitability-api/internal/config"
	"github.com/vfg2006/profitability-api/pkg/utils"
)

func main() {
	seedPath := flag.String("seed", "", "arquivo YAML com colaboradores e clientes iniciais")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	if _, err := conn.Exec(schema); err != nil {
		logrus.Fatalf("ERRO ao criar tabelas: %v", err)
	}
	logrus.Info("Tabelas verificadas")

	if *seedPath == "" {
		logrus.Infof("Migração concluída em %v (sem seed)", time.Since(startTime))
		return
	}

	if err := runSeed(ctx, conn, *seedPath); err != nil {
		logrus.Errorf("ERRO ao aplicar seed: %v", err)
		os.Exit(1)
	}

	logrus.Infof("Carga inicial concluída em %v!", time.Since(startTime))
}

func runSeed(ctx context.Context, conn *postgres.Connection, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	seed, err := loadSeed(file)
	if err != nil {
		return err
	}
	logrus.Infof("Seed com %d colaboradores e %d clientes", len(seed.Employees), len(seed.Clients))

	employeeRepo := repository.NewEmployeeRepository(conn)
	clientRepo := repository.NewClientRepository(conn)

	existingEmployees, err := employeeRepo.List()
	if err != nil {
		return err
	}
	existingClients, err := clientRepo.List()
	if err != nil {
		return err
	}

	if err := seed.prepare(existingEmployees, existingClients, utils.GenerateID); err != nil {
		return err
	}

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		employees := employeeRepo.WithTx(tx)
		for i := range seed.Employees {
			if err := employees.Upsert(&seed.Employees[i]); err != nil {
				logrus.Errorf("ERRO ao inserir colaborador [%d/%d] %s: %v", i+1, len(seed.Employees), seed.Employees[i].Name, err)
				return err
			}
		}

		clients := clientRepo.WithTx(tx)
		for i := range seed.Clients {
			if err := clients.Upsert(&seed.Clients[i]); err != nil {
				logrus.Errorf("ERRO ao inserir cliente [%d/%d] %s: %v", i+1, len(seed.Clients), seed.Clients[i].Name, err)
				return err
			}
		}

		return nil
	})
}
