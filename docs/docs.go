// Package docs описание API для swagger UI (обновляется через swag init)
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "summary": "Проверка работоспособности",
                "tags": [
                    "Health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "map[string]string",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "503": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "summary": "Регистрация пользователя",
                "description": "Создаёт оператора. Администратор заводится командой migrate.",
                "tags": [
                    "Authentication"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Данные для регистрации",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.UserView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "409": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "summary": "Вход в систему",
                "description": "Аутентификация пользователя с возвратом JWT токена",
                "tags": [
                    "Authentication"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Данные для входа",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.LoginResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "429": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "summary": "Выход из системы",
                "description": "Токен заносится в blacklist до истечения срока",
                "tags": [
                    "Authentication"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SuccessResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/auth/current": {
            "get": {
                "summary": "Текущий пользователь",
                "tags": [
                    "Authentication"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.UserView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/backups/all": {
            "get": {
                "summary": "Список резервных копий",
                "tags": [
                    "Backups"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "503": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/backups/export": {
            "post": {
                "summary": "Резервная копия",
                "description": "Пишет backup_<table>.json по каждой таблице под новым префиксом",
                "tags": [
                    "Backups"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.BackupResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "503": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/backups/import": {
            "post": {
                "summary": "Восстановление из копии",
                "description": "Все таблицы загружаются в одной транзакции; существующие pid дают конфликт",
                "tags": [
                    "Backups"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "prefix",
                        "in": "query",
                        "required": true,
                        "description": "Префикс копии",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.BackupResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "503": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/clients/all": {
            "get": {
                "summary": "Список клиентов",
                "description": "Клиенты с партнёром и кратким списком заказов",
                "tags": [
                    "Clients"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ClientView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    }
                }
            }
        },
        "/api/clients/{pid}": {
            "get": {
                "summary": "Клиент по pid",
                "tags": [
                    "Clients"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid клиента",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ClientView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/clients/create": {
            "post": {
                "summary": "Создание клиента",
                "description": "Партнёр указывается по partner_pid (необязательно)",
                "tags": [
                    "Clients"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Данные клиента",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.ClientView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/clients/edit/{pid}": {
            "put": {
                "summary": "Изменение клиента",
                "tags": [
                    "Clients"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid клиента",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Данные клиента",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ClientView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/clients/delete/{pid}": {
            "delete": {
                "summary": "Удаление клиента",
                "description": "Заказы клиента удаляются каскадно",
                "tags": [
                    "Clients"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid клиента",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ClientView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/fees/all": {
            "get": {
                "summary": "Справочник тарифов",
                "tags": [
                    "Fees"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.FeeView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    }
                }
            }
        },
        "/api/fees/{pid}": {
            "get": {
                "summary": "Тариф по pid",
                "tags": [
                    "Fees"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid тарифа",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.FeeView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/fees/create": {
            "post": {
                "summary": "Создание тарифа",
                "tags": [
                    "Fees"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Тариф",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.FeeView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/fees/edit/{pid}": {
            "put": {
                "summary": "Изменение тарифа",
                "tags": [
                    "Fees"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid тарифа",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Тариф",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.FeeView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/fees/delete/{pid}": {
            "delete": {
                "summary": "Удаление тарифа",
                "description": "Привязки тарифа к процессам и заказам удаляются каскадно",
                "tags": [
                    "Fees"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid тарифа",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.FeeView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/orders/all": {
            "get": {
                "summary": "Список заказов",
                "description": "Заказы с клиентом, процессом, продавцом, тарифами и платежами",
                "tags": [
                    "Orders"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.OrderView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    }
                }
            }
        },
        "/api/orders/{pid}": {
            "get": {
                "summary": "Заказ по pid",
                "tags": [
                    "Orders"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid заказа",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.OrderView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/orders/create": {
            "post": {
                "summary": "Создание заказа",
                "description": "Создаёт заказ с тарифами, платежами и датами переноса в одной транзакции",
                "tags": [
                    "Orders"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Заказ",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.OrderView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/orders/edit/{pid}": {
            "put": {
                "summary": "Изменение заказа",
                "description": "Тарифы без order_fee_pid и платежи без pid добавляются, остальные обновляются. У связи с order_fee_pid тариф заменяется на fee_pid; неизвестный fee_pid даёт 404. Не переданные платежи не меняются; удаление через /api/payments/delete/{pid}.",
                "tags": [
                    "Orders"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid заказа",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Заказ",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.OrderView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/orders/delete/{pid}": {
            "delete": {
                "summary": "Удаление заказа",
                "description": "Тарифы, платежи и даты переноса удаляются каскадно",
                "tags": [
                    "Orders"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid заказа",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.OrderView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/payments/delete/{pid}": {
            "delete": {
                "summary": "Удаление платежа",
                "tags": [
                    "Orders"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid платежа",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SuccessResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/orders/export": {
            "get": {
                "summary": "Выгрузка заказов в XLSX",
                "tags": [
                    "Orders"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "500": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/partners/all": {
            "get": {
                "summary": "Список партнёров",
                "tags": [
                    "Partners"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.PartnerView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    }
                }
            }
        },
        "/api/partners/{pid}": {
            "get": {
                "summary": "Партнёр по pid",
                "tags": [
                    "Partners"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid партнёра",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.PartnerView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/partners/create": {
            "post": {
                "summary": "Создание партнёра",
                "tags": [
                    "Partners"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Данные партнёра",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.PartnerView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/partners/edit/{pid}": {
            "put": {
                "summary": "Изменение партнёра",
                "tags": [
                    "Partners"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid партнёра",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Данные партнёра",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.PartnerView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/partners/delete/{pid}": {
            "delete": {
                "summary": "Удаление партнёра",
                "description": "Клиенты партнёра удаляются каскадно",
                "tags": [
                    "Partners"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid партнёра",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.PartnerView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/processes/all": {
            "get": {
                "summary": "Список процессов",
                "description": "Возвращает все процессы вместе с привязанными тарифами",
                "tags": [
                    "Processes"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ProcessView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "401": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/processes/{pid}": {
            "get": {
                "summary": "Процесс по pid",
                "tags": [
                    "Processes"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid процесса",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ProcessView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/processes/create": {
            "post": {
                "summary": "Создание процесса",
                "tags": [
                    "Processes"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Данные процесса",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.ProcessView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/processes/edit/{pid}": {
            "put": {
                "summary": "Изменение процесса",
                "tags": [
                    "Processes"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid процесса",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Данные процесса",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ProcessView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/processes/delete/{pid}": {
            "delete": {
                "summary": "Удаление процесса",
                "tags": [
                    "Processes"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid процесса",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ProcessView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/process_fees/create": {
            "post": {
                "summary": "Привязка тарифа к процессу",
                "tags": [
                    "ProcessFees"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "pid процесса и тарифа",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.ProcessView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/process_fees/edit": {
            "put": {
                "summary": "Изменение привязки тарифа",
                "tags": [
                    "ProcessFees"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Привязка",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ProcessView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/process_fees/delete": {
            "delete": {
                "summary": "Удаление привязки тарифа",
                "tags": [
                    "ProcessFees"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "pid привязки",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ProcessView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/sellers/all": {
            "get": {
                "summary": "Список продавцов",
                "tags": [
                    "Sellers"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SellerView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    }
                }
            }
        },
        "/api/sellers/{pid}": {
            "get": {
                "summary": "Продавец по pid",
                "tags": [
                    "Sellers"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid продавца",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SellerView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/sellers/create": {
            "post": {
                "summary": "Создание продавца",
                "tags": [
                    "Sellers"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Имя продавца",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.SellerView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/sellers/edit/{pid}": {
            "put": {
                "summary": "Изменение продавца",
                "tags": [
                    "Sellers"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid продавца",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Имя продавца",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SellerView",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/sellers/delete/{pid}": {
            "delete": {
                "summary": "Удаление продавца",
                "description": "Заказы продавца удаляются каскадно",
                "tags": [
                    "Sellers"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "pid",
                        "in": "path",
                        "required": true,
                        "description": "pid продавца",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SellerView",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "object"
                            }
                        }
                    },
                    "404": {
                        "description": "dto.ErrorResponse",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer <JWT>",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Back-office API",
	Description:      "Процессы, партнёры, клиенты, заказы и платежи",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
